package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Sheet   SheetConfig   `yaml:"sheet"`
	Storage StorageConfig `yaml:"storage"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// SheetConfig 는 포트폴리오 워크북의 읽기 대상 시트를 정의한다.
// 컬럼 오프셋은 런타임에 탐색하지 않고 레이아웃 변형(has_date_column)으로
// 빌드 타임에 고정된다.
type SheetConfig struct {
	// Name 은 워크북 내 대상 시트 이름이다.
	Name string `yaml:"name"`

	// HasDateColumn 은 선두 date 컬럼이 있는 레이아웃 변형을 선택한다.
	HasDateColumn bool `yaml:"has_date_column"`

	// Timezone 은 date 셀 포맷팅에 사용하는 IANA 타임존이다.
	// 비어 있으면 Asia/Tokyo 를 사용한다.
	Timezone string `yaml:"timezone"`
}

// StorageConfig is the S3-compatible object store the workbook and the
// image folder live in. Credentials come from the environment, not yaml.
type StorageConfig struct {
	Region       string `yaml:"region"`
	Bucket       string `yaml:"bucket"`
	Endpoint     string `yaml:"endpoint"`
	WorkbookKey  string `yaml:"workbook_key"`
	ImagesPrefix string `yaml:"images_prefix"`

	// LocalDir 가 설정되면 S3 대신 로컬 디렉터리를 오브젝트 스토어로 사용한다.
	// (로컬 개발용)
	LocalDir string `yaml:"local_dir"`
}

// AccessKeyID / SecretAccessKey 는 .env 또는 프로세스 환경변수에서만 읽는다.
func (s StorageConfig) AccessKeyID() string     { return os.Getenv("S3_ACCESS_KEY_ID") }
func (s StorageConfig) SecretAccessKey() string { return os.Getenv("S3_SECRET_ACCESS_KEY") }

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	applyDefaults(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func applyDefaults(c *AppConfig) {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Sheet.Name == "" {
		c.Sheet.Name = "portfolio"
	}
	if c.Sheet.Timezone == "" {
		c.Sheet.Timezone = "Asia/Tokyo"
	}
	if c.Storage.WorkbookKey == "" {
		c.Storage.WorkbookKey = "portfolio.xlsx"
	}
	// env 가 yaml 보다 우선한다. (배포 환경에서 버킷만 바꿔치기할 수 있도록)
	if v := os.Getenv("S3_BUCKET"); v != "" {
		c.Storage.Bucket = v
	}
	if v := os.Getenv("S3_ENDPOINT"); v != "" {
		c.Storage.Endpoint = v
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

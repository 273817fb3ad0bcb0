package dto

// ErrorEnvelopeDTO는 공통 에러 응답 형식을 통일하기 위한 DTO이다.
// 전송 레벨 상태가 200 으로 고정되어 있으므로 statusCode 는 바디 안에만 실리는
// 정보성 필드이고, 호출자는 error 필드 유무로만 실패를 판별해야 한다.
type ErrorEnvelopeDTO struct {
	Error      bool   `json:"error" example:"true"`
	Message    string `json:"message" example:"sheet not found"`
	StatusCode int    `json:"statusCode" example:"500"`
}

// HealthDTO는 헬스체크 응답 형식이다.
type HealthDTO struct {
	Status string `json:"status" example:"ok"`
}

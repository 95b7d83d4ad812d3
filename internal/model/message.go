package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

func Warning(code, message string) CalculationMessage {
	return CalculationMessage{Level: LevelWarning, Code: code, Message: message}
}

func Critical(code, message string) CalculationMessage {
	return CalculationMessage{Level: LevelCritical, Code: code, Message: message}
}

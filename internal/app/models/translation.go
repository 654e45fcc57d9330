package models

type Translation struct {
	TranslatedText string `json:"translatedText"`
	SourceText     string `json:"sourceText"`
	TargetLanguage string `json:"targetLanguage"`
	Status         string `json:"status"`
	Provider       string `json:"provider,omitempty"`
}

type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName,omitempty"`
}

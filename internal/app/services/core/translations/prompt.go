package translations

import "fmt"

func directPrompt(language, text string) string {
	return fmt.Sprintf("Translate the following text to %s: %s", language, text)
}

func textOnlyPrompt(language, text string) string {
	return fmt.Sprintf("Translate the following text to %s.\nOnly return the translated text, nothing else.\n\nText to translate: \"%s\"", language, text)
}

package translations

import (
	"context"
	"errors"
	"testing"
	"time"

	"healthportal-service/internal/app/contracts"
	"healthportal-service/internal/app/services/shared/redis"
	"healthportal-service/internal/pkg/constvars"
	"healthportal-service/internal/pkg/dto/requests"
	"healthportal-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubClient struct {
	name    string
	reply   string
	err     error
	prompts []string
}

func (s *stubClient) Name() string { return s.name }

func (s *stubClient) GenerateContent(ctx context.Context, request contracts.GenerateRequest) (string, error) {
	s.prompts = append(s.prompts, request.Prompt)
	return s.reply, s.err
}

func (s *stubClient) Close() error { return nil }

func newTestUsecase(primary, fallback contracts.GenerativeClient) *translationUsecase {
	return &translationUsecase{
		Primary:         primary,
		Fallback:        fallback,
		RedisRepository: redis.NewMemoryRepository(),
		CacheTTL:        time.Hour,
		Log:             zap.NewNop(),
	}
}

func TestTranslateSkipsWithoutCallingProviders(t *testing.T) {
	ctx := context.Background()
	primary := &stubClient{name: constvars.AIProviderVertex, reply: "x"}
	fallback := &stubClient{name: constvars.AIProviderGemini, reply: "x"}
	uc := newTestUsecase(primary, fallback)

	for _, request := range []*requests.Translate{
		{Text: "", TargetLanguage: "hi"},
		{Text: "Hello", TargetLanguage: "en"},
	} {
		result, err := uc.Translate(ctx, request)
		require.NoError(t, err)
		assert.Equal(t, request.Text, result.TranslatedText)
		assert.Equal(t, constvars.TranslationStatusSkipped, result.Status)

		direct, err := uc.TranslateWithGemini(ctx, request)
		require.NoError(t, err)
		assert.Equal(t, request.Text, direct.TranslatedText)

		textOnly, err := uc.TranslateWithFallbackPrompt(ctx, request)
		require.NoError(t, err)
		assert.Equal(t, request.Text, textOnly.TranslatedText)
	}

	assert.Empty(t, primary.prompts)
	assert.Empty(t, fallback.prompts)
}

func TestTranslate(t *testing.T) {
	ctx := context.Background()
	request := &requests.Translate{Text: "Welcome", TargetLanguage: "hi"}

	t.Run("Primary succeeds", func(t *testing.T) {
		primary := &stubClient{name: constvars.AIProviderVertex, reply: "स्वागत है"}
		uc := newTestUsecase(primary, &stubClient{name: constvars.AIProviderGemini})

		result, err := uc.Translate(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, "स्वागत है", result.TranslatedText)
		assert.Equal(t, constvars.TranslationStatusOK, result.Status)
		assert.Equal(t, constvars.AIProviderVertex, result.Provider)
		assert.Equal(t, "Translate the following text to Hindi: Welcome", primary.prompts[0])
	})

	t.Run("Fallback result is tagged degraded", func(t *testing.T) {
		primary := &stubClient{name: constvars.AIProviderVertex, err: errors.New("permission denied")}
		fallback := &stubClient{name: constvars.AIProviderGemini, reply: "स्वागत"}
		uc := newTestUsecase(primary, fallback)

		result, err := uc.Translate(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, constvars.TranslationStatusDegraded, result.Status)
		assert.Equal(t, constvars.AIProviderGemini, result.Provider)
		assert.Equal(t, "स्वागत", result.TranslatedText)
	})

	t.Run("Missing primary falls back", func(t *testing.T) {
		uc := newTestUsecase(nil, &stubClient{name: constvars.AIProviderGemini, reply: "வரவேற்கிறோம்"})

		result, err := uc.Translate(ctx, &requests.Translate{Text: "Welcome", TargetLanguage: "ta"})

		require.NoError(t, err)
		assert.Equal(t, constvars.TranslationStatusDegraded, result.Status)
	})

	t.Run("Both providers failing returns the original text", func(t *testing.T) {
		uc := newTestUsecase(
			&stubClient{name: constvars.AIProviderVertex, err: errors.New("a")},
			&stubClient{name: constvars.AIProviderGemini, err: errors.New("b")},
		)

		result, err := uc.Translate(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, "Welcome", result.TranslatedText)
		assert.Equal(t, constvars.TranslationStatusFailed, result.Status)
	})

	t.Run("Successful translation is cached", func(t *testing.T) {
		primary := &stubClient{name: constvars.AIProviderVertex, reply: "Bienvenue"}
		uc := newTestUsecase(primary, nil)
		fr := &requests.Translate{Text: "Welcome", TargetLanguage: "fr"}

		first, err := uc.Translate(ctx, fr)
		require.NoError(t, err)
		second, err := uc.Translate(ctx, fr)
		require.NoError(t, err)

		assert.Equal(t, first.TranslatedText, second.TranslatedText)
		assert.Len(t, primary.prompts, 1)
	})
}

func TestTranslateDirect(t *testing.T) {
	ctx := context.Background()
	request := &requests.Translate{Text: "Good morning", TargetLanguage: "de"}

	t.Run("Text-only prompt is trimmed", func(t *testing.T) {
		fallback := &stubClient{name: constvars.AIProviderGemini, reply: "  Guten Morgen\n"}
		uc := newTestUsecase(nil, fallback)

		result, err := uc.TranslateWithFallbackPrompt(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, "Guten Morgen", result.TranslatedText)
		assert.Contains(t, fallback.prompts[0], "Only return the translated text")
		assert.Contains(t, fallback.prompts[0], "German")
	})

	t.Run("Direct prompt", func(t *testing.T) {
		fallback := &stubClient{name: constvars.AIProviderGemini, reply: "Guten Morgen"}
		uc := newTestUsecase(nil, fallback)

		result, err := uc.TranslateWithGemini(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, "Guten Morgen", result.TranslatedText)
		assert.Equal(t, "Translate the following text to German: Good morning", fallback.prompts[0])
	})

	t.Run("Missing client", func(t *testing.T) {
		_, err := newTestUsecase(nil, nil).TranslateWithGemini(ctx, request)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 500, customErr.StatusCode)
	})

	t.Run("Provider failure", func(t *testing.T) {
		uc := newTestUsecase(nil, &stubClient{name: constvars.AIProviderGemini, err: errors.New("down")})

		_, err := uc.TranslateWithFallbackPrompt(ctx, request)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 502, customErr.StatusCode)
	})
}

func TestUITranslations(t *testing.T) {
	uc := newTestUsecase(nil, nil)

	hindi := uc.GetUITranslations(context.Background(), "hi")
	assert.Equal(t, "स्वागत है", hindi.Entries["welcome"])
	assert.Len(t, hindi.Entries, len(uiDictionary))

	unknown := uc.GetUITranslations(context.Background(), "fr")
	assert.Equal(t, "Welcome", unknown.Entries["welcome"])

	empty := uc.GetUITranslations(context.Background(), "")
	assert.Equal(t, constvars.DefaultLanguageCode, empty.Language)

	languages := uc.ListLanguages(context.Background())
	require.Len(t, languages.Languages, 6)
	assert.Equal(t, "en", languages.Languages[0].Code)
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "Malayalam", LanguageName("ml"))
	assert.Equal(t, "xx", LanguageName("xx"))
}

package tests

import (
	"os"
	"testing"

	"todolist/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler tests read the real message catalogs so assertions see the
// rendered text.
const translationFolder = "../../../../../pkg/translator/translation"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	restore := zap.ReplaceGlobals(zap.NewNop())

	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	code := m.Run()
	restore()
	os.Exit(code)
}

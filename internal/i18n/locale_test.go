package i18n

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_GeoCountries(t *testing.T) {
	for _, country := range []string{"CN", "TW", "HK", "MO"} {
		lang, persist := Resolve("", "", country, nil)
		assert.Equal(t, LangZh, lang, country)
		assert.True(t, persist)
	}

	for _, country := range []string{"US", "DE", "JP", ""} {
		lang, _ := Resolve("", "", country, nil)
		assert.Equal(t, LangEn, lang, country)
	}
}

func TestResolve_GeoErrorMeansChinese(t *testing.T) {
	lang, persist := Resolve("", "", "", errors.New("lookup failed"))
	assert.Equal(t, LangZh, lang)
	assert.False(t, persist)
}

func TestResolve_QueryOverridesSession(t *testing.T) {
	lang, persist := Resolve("en", "zh", "CN", nil)
	assert.Equal(t, LangEn, lang)
	assert.True(t, persist)
}

func TestResolve_SessionBeatsGeo(t *testing.T) {
	lang, persist := Resolve("", "en", "CN", nil)
	assert.Equal(t, LangEn, lang)
	assert.False(t, persist)
}

func TestResolve_UnsupportedFallsBackToEnglish(t *testing.T) {
	lang, persist := Resolve("fr", "zh", "CN", nil)
	assert.Equal(t, LangEn, lang)
	assert.True(t, persist)

	lang, persist = Resolve("", "de", "", nil)
	assert.Equal(t, LangEn, lang)
	assert.True(t, persist)
}

func TestMessages_Fallback(t *testing.T) {
	assert.Equal(t, "首页", T(LangZh).Get("nav_home"))
	assert.Equal(t, "Home", T("fr").Get("nav_home"))
	assert.Equal(t, "missing_key", T(LangZh).Get("missing_key"))
}

func TestRegisterValidation(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterValidation(v))

	type form struct {
		Lang string `validate:"lang"`
	}
	assert.NoError(t, v.Struct(form{Lang: "zh"}))
	assert.NoError(t, v.Struct(form{Lang: ""}))
	assert.Error(t, v.Struct(form{Lang: "fr"}))
}

func TestRegisterBinding_Idempotent(t *testing.T) {
	require.NoError(t, RegisterBinding())
	require.NoError(t, RegisterBinding())
}

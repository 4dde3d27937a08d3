package validate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello  ", 100))
	assert.Equal(t, "scriptalert(1)/script", SanitizeString("<script>alert(1)</script>", 100))
	assert.Equal(t, "abc", SanitizeString("abcdef", 3))
	assert.Equal(t, "", SanitizeString(nil, 100))
	assert.Equal(t, "", SanitizeString(42.0, 100))
	assert.Equal(t, "", SanitizeString(true, 100))
	assert.Equal(t, "", SanitizeString("   ", 100))
}

func TestRoundRating(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{8.3, 8.5},
		{8.2, 8},
		{8.74, 8.5},
		{8.75, 9},
		{0, 0},
		{10, 10},
		{-3, 0},
		{42, 10},
		{0.24, 0},
		{0.25, 0.5},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RoundRating(c.in), "rating %v", c.in)
	}
}

func TestRoundRatingAlwaysHalfStep(t *testing.T) {
	for r := -2.0; r <= 12.0; r += 0.07 {
		got := RoundRating(r)
		assert.True(t, got >= 0 && got <= 10, "rating %v out of range: %v", r, got)
		assert.Equal(t, float64(int(got*2))/2, got, "rating %v not a half step: %v", r, got)
	}
}

func TestNormalizeTikTokID(t *testing.T) {
	assert.Equal(t, "7262868213384400171", NormalizeTikTokID("7262868213384400171"))
	assert.Equal(t, "12345", NormalizeTikTokID(" 1-2-3-4-5 "))
	assert.Equal(t, strings.Repeat("1", 25), NormalizeTikTokID(strings.Repeat("1", 30)))
	assert.Equal(t, "", NormalizeTikTokID(nil))
	assert.Equal(t, "", NormalizeTikTokID(12345.0))
}

func TestNormalizeTags(t *testing.T) {
	tags := NormalizeTags([]interface{}{" Pizza ", "VEGAN", "pizza", "<b>bbq</b>", "", 7.0})
	assert.Equal(t, []string{"pizza", "vegan", "bbbq/b"}, tags)
}

func TestNormalizeTagsCapsAtTwenty(t *testing.T) {
	in := make([]interface{}, 0, 30)
	for i := 0; i < 30; i++ {
		in = append(in, fmt.Sprintf("tag-%d", i))
	}
	tags := NormalizeTags(in)
	assert.Len(t, tags, 20)
	assert.Equal(t, "tag-0", tags[0])
	assert.Equal(t, "tag-19", tags[19])
}

func TestNormalizeTagsNonArray(t *testing.T) {
	assert.Equal(t, []string{}, NormalizeTags("pizza"))
	assert.Equal(t, []string{}, NormalizeTags(nil))
}

func TestValidImageURL(t *testing.T) {
	assert.True(t, ValidImageURL(""))
	assert.True(t, ValidImageURL("/images/logo.png"))
	assert.True(t, ValidImageURL("https://cdn.example.com/logo.png"))
	assert.False(t, ValidImageURL("http://cdn.example.com/logo.png"))
	assert.False(t, ValidImageURL("javascript:alert(1)"))
	assert.False(t, ValidImageURL("logo.png"))
}

func TestValidHexColor(t *testing.T) {
	assert.True(t, ValidHexColor("#fff"))
	assert.True(t, ValidHexColor("#FF8800"))
	assert.True(t, ValidHexColor("#ff8800cc"))
	assert.False(t, ValidHexColor("fff"))
	assert.False(t, ValidHexColor("#gg8800"))
	assert.False(t, ValidHexColor("#ff8800cc0"))
	assert.False(t, ValidHexColor(""))
}

package candidate

type ColorTheme string

const (
	ThemeDefault    ColorTheme = "default"
	ThemeWarm       ColorTheme = "warm"
	ThemeCool       ColorTheme = "cool"
	ThemeMonochrome ColorTheme = "monochrome"
)

var AllColorThemes = []ColorTheme{
	ThemeDefault,
	ThemeWarm,
	ThemeCool,
	ThemeMonochrome,
}

func (c ColorTheme) IsValid() bool {
	for _, v := range AllColorThemes {
		if c == v {
			return true
		}
	}
	return false
}

package constants

import "strings"

type LanguageType string

const (
	LanguageC   LanguageType = "c"
	LanguageCpp LanguageType = "cpp"
)

// LanguageByFile 根据源文件后缀推断语言，无法推断时返回空字符串
func LanguageByFile(path string) LanguageType {
	for _, suffix := range []string{".cc", ".cpp", ".cxx", ".hpp", ".hh"} {
		if strings.HasSuffix(path, suffix) {
			return LanguageCpp
		}
	}
	if strings.HasSuffix(path, ".c") || strings.HasSuffix(path, ".h") {
		return LanguageC
	}
	return ""
}

package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Default is the language used when none is configured.
var Default = language.Vietnamese

var supported = []language.Tag{language.Vietnamese, language.English}

var matcher = language.NewMatcher(supported)

// Message keys.
const (
	MsgCopyingAll       = "Copying all Augment AI prompts..."
	MsgCopyingSelected  = "Copying %d selected prompts..."
	MsgCopied           = "Copied %d prompts into %s"
	MsgSkipped          = "Skipped %d existing files"
	MsgListHint         = "Use \"%s --list\" to see the available prompts"
	MsgCopyFailed       = "An error occurred while copying prompts"
	MsgListHeader       = "Available Augment AI prompts:"
	MsgListTotal        = "Total: %d prompts"
	MsgListFailed       = "Error reading the prompt list:"
	MsgNotFound         = "Prompt not found: %s"
	MsgDidYouMean       = "Did you mean: %s?"
	MsgConfirmOverwrite = "File %s already exists. Overwrite?"
	MsgNotInteractive   = "stdin is not a terminal; answering \"no\" for existing files"
	MsgError            = "Error:"
)

var vietnamese = map[string]string{
	MsgCopyingAll:       "Đang copy tất cả Augment AI prompts...",
	MsgCopyingSelected:  "Đang copy %d prompts được chọn...",
	MsgCopied:           "Đã copy thành công %d prompts vào %s",
	MsgSkipped:          "Đã bỏ qua %d files đã tồn tại",
	MsgListHint:         "Sử dụng \"%s --list\" để xem danh sách prompts có sẵn",
	MsgCopyFailed:       "Có lỗi xảy ra khi copy prompts",
	MsgListHeader:       "Danh sách Augment AI prompts có sẵn:",
	MsgListTotal:        "Tổng cộng: %d prompts",
	MsgListFailed:       "Lỗi khi đọc danh sách prompts:",
	MsgNotFound:         "Không tìm thấy prompt: %s",
	MsgDidYouMean:       "Có phải ý bạn là: %s?",
	MsgConfirmOverwrite: "File %s đã tồn tại. Bạn có muốn ghi đè không?",
	MsgNotInteractive:   "stdin không phải terminal; giữ nguyên các file đã tồn tại",
	MsgError:            "Lỗi:",
}

func init() {
	for key, msg := range vietnamese {
		if err := message.SetString(language.Vietnamese, key, msg); err != nil {
			panic(err)
		}
	}
}

// Tag resolves a configured language name ("vi", "en", "en-US", ...) to one of
// the supported tags. Empty or unknown values resolve to Default.
func Tag(lang string) language.Tag {
	if lang == "" {
		return Default
	}
	requested, err := language.Parse(lang)
	if err != nil {
		return Default
	}
	_, idx, confidence := matcher.Match(requested)
	if confidence == language.No {
		return Default
	}
	return supported[idx]
}

// Printer returns a message printer for the configured language.
func Printer(lang string) *message.Printer {
	return message.NewPrinter(Tag(lang))
}

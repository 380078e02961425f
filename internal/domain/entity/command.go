package entity

import "strings"

// Command menyu buyrug'i
type Command string

const (
	CommandUnknown    Command = ""
	CommandAddProduct Command = "P"
	CommandSearch     Command = "S"
	CommandQuit       Command = "Q"
)

// ParseCommand foydalanuvchi tanlovini buyruqqa aylantirish
func ParseCommand(input string) Command {
	switch cmd := Command(strings.ToUpper(strings.TrimSpace(input))); cmd {
	case CommandAddProduct, CommandSearch, CommandQuit:
		return cmd
	default:
		return CommandUnknown
	}
}

// IsQuit kiritish Q ekanini tekshirish (katta-kichik harf va bo'shliqlar farqsiz)
func IsQuit(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), string(CommandQuit))
}

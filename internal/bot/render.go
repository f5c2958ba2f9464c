package bot

import (
	"github.com/m3rciful/tynys/core/telegram/callbacks"
	"github.com/m3rciful/tynys/core/telegram/keyboard"
	"github.com/m3rciful/tynys/internal/domain"
	"github.com/m3rciful/tynys/internal/flow"
	"github.com/m3rciful/tynys/internal/texts"

	tele "gopkg.in/telebot.v4"
)

const buttonsPerRow = 2

func optionButtons(namespace string, opts []texts.Option) []keyboard.InlineBtn {
	btns := make([]keyboard.InlineBtn, 0, len(opts))
	for _, o := range opts {
		btns = append(btns, keyboard.InlineBtn{Text: o.Label, Data: callbacks.Data(namespace, o.Value)})
	}
	return btns
}

// Markup renders a semantic keyboard in lang. MarkupNone yields nil.
func Markup(lang string, m flow.Markup) *tele.ReplyMarkup {
	switch m {
	case flow.MarkupMainMenu:
		return keyboard.ReplyButtons(texts.MenuRows(lang)...)
	case flow.MarkupMood:
		return keyboard.InlineButtonsNPerRow(optionButtons(flow.NamespaceMood, texts.Moods(lang)), buttonsPerRow)
	case flow.MarkupCause:
		return keyboard.InlineButtonsNPerRow(optionButtons(flow.NamespaceCause, texts.Causes(lang)), buttonsPerRow)
	case flow.MarkupStress:
		return keyboard.InlineButtonsNPerRow(optionButtons(flow.NamespaceStress, texts.Answers(lang)), buttonsPerRow)
	case flow.MarkupQuizAnswer:
		return keyboard.InlineButtonsNPerRow(optionButtons(flow.NamespaceQuizAnswer, texts.Answers(lang)), buttonsPerRow)
	case flow.MarkupLanguage:
		btns := make([]keyboard.InlineBtn, 0, len(domain.SupportedLanguages))
		for _, code := range domain.SupportedLanguages {
			btns = append(btns, keyboard.InlineBtn{Text: texts.LanguageLabel(code), Data: callbacks.Data(flow.NamespaceLanguage, code)})
		}
		return keyboard.InlineButtonsNPerRow(btns, buttonsPerRow)
	case flow.MarkupBackToMenu:
		return keyboard.InlineButtonsRows([]keyboard.InlineBtn{{
			Text: texts.Get(lang, texts.BackToMenu),
			Data: callbacks.Data(flow.NamespaceMenu, flow.MenuBack),
		}})
	}
	return nil
}

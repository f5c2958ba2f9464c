package helpers

import tele "gopkg.in/telebot.v4"

const (
	repliesKey  = "replies"
	keyboardKey = "kb"
)

// countReply records a message queued for the current update. Counting at
// enqueue time keeps the numbers available to the handler summary even
// though delivery is asynchronous.
func countReply(c tele.Context, opts *tele.SendOptions) {
	n, _ := c.Get(repliesKey).(int)
	c.Set(repliesKey, n+1)
	if opts != nil && opts.ReplyMarkup != nil {
		c.Set(keyboardKey, true)
	}
}

// Counters returns how many messages were queued while handling the update
// and whether any of them carried a keyboard.
func Counters(c tele.Context) (int, bool) {
	n, _ := c.Get(repliesKey).(int)
	kb, _ := c.Get(keyboardKey).(bool)
	return n, kb
}

package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// splitCallbackData splits raw "unique|payload" data of a button whose
// endpoint did not match
func splitCallbackData(data string) (unique, payload string) {
	unique, payload, _ = strings.Cut(cleanCallbackData(data), "|")
	return unique, payload
}

// chatID returns the chat the update belongs to
func chatID(c tele.Context) int64 {
	if chat := c.Chat(); chat != nil {
		return chat.ID
	}
	return c.Sender().ID
}

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	h.logger.Info("User started bot",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("username", c.Sender().Username),
	)
	return h.show(c, h.start(chatID(c)))
}

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	// Ignore commands (starting with /)
	if strings.HasPrefix(strings.TrimSpace(c.Text()), "/") {
		return nil
	}
	return h.show(c, h.onText(chatID(c), c.Text()))
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	unique := callback.Unique
	data := cleanCallbackData(callback.Data)
	if unique == "" {
		unique, data = splitCallbackData(callback.Data)
	}

	h.logger.Debug("Processing callback",
		zap.String("unique", unique),
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.Int64("user_id", c.Sender().ID),
	)

	return h.show(c, h.onButton(chatID(c), unique, data))
}

// show delivers a screen: edits the message behind a button press, sends a
// new one for text input. The notice goes out as a toast or a separate message.
func (h *Handler) show(c tele.Context, sc screen) error {
	var opts []interface{}
	if markup := sc.markup(); markup != nil {
		opts = append(opts, markup)
	}

	if c.Callback() == nil {
		if sc.notice != "" {
			if err := c.Send(sc.notice); err != nil {
				return err
			}
		}
		return c.Send(sc.text, opts...)
	}

	if err := c.Edit(sc.text, opts...); err != nil {
		if handleErr := h.handleEditError(err, c, sc.notice); handleErr == nil {
			return nil // Message was already modified, just acknowledged
		}
		return c.Send(sc.text, opts...)
	}
	return c.Respond(&tele.CallbackResponse{Text: sc.notice})
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, notice string) error {
	if err == nil {
		return nil
	}

	// Re-rendering an unchanged screen is not an error
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message unchanged, acknowledging",
			zap.Int64("user_id", c.Sender().ID),
			zap.String("callback_id", c.Callback().ID),
		)
		if ackErr := c.Respond(&tele.CallbackResponse{Text: notice}); ackErr != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", c.Sender().ID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(&tele.CallbackResponse{Text: notice}); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgPrivateBot = "This bot is private."

// OwnerOnly lets updates through only from the owner. An ownerID of zero
// disables the check.
func OwnerOnly(ownerID int64, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if ownerID == 0 {
				return next(c)
			}

			sender := c.Sender()
			if sender == nil || sender.ID != ownerID {
				var userID int64
				if sender != nil {
					userID = sender.ID
				}
				logger.Warn("Rejected update from non-owner", zap.Int64("user_id", userID))

				if c.Callback() != nil {
					return c.Respond(&tele.CallbackResponse{Text: msgPrivateBot})
				}
				return c.Send(msgPrivateBot)
			}

			return next(c)
		}
	}
}

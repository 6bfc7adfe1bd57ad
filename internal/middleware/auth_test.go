package middleware

import (
	"testing"

	"multilingual/internal/testutil"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

// fakeContext implements the parts of tele.Context the middleware touches
type fakeContext struct {
	tele.Context
	sender    *tele.User
	callback  *tele.Callback
	sent      []interface{}
	responses []*tele.CallbackResponse
}

func (f *fakeContext) Sender() *tele.User { return f.sender }
func (f *fakeContext) Callback() *tele.Callback { return f.callback }

func (f *fakeContext) Send(what interface{}, _ ...interface{}) error {
	f.sent = append(f.sent, what)
	return nil
}

func (f *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	f.responses = append(f.responses, resp...)
	return nil
}

func TestOwnerOnly(t *testing.T) {
	tests := []struct {
		name         string
		ownerID      int64
		sender       *tele.User
		callback     *tele.Callback
		expectCalled bool
		expectSent   int
		expectResp   int
	}{
		{
			name:         "owner passes",
			ownerID:      42,
			sender:       &tele.User{ID: 42},
			expectCalled: true,
		},
		{
			name:         "check disabled",
			ownerID:      0,
			sender:       &tele.User{ID: 7},
			expectCalled: true,
		},
		{
			name:       "stranger message",
			ownerID:    42,
			sender:     &tele.User{ID: 7},
			expectSent: 1,
		},
		{
			name:       "stranger button",
			ownerID:    42,
			sender:     &tele.User{ID: 7},
			callback:   &tele.Callback{ID: "cb"},
			expectResp: 1,
		},
		{
			name:       "no sender",
			ownerID:    42,
			expectSent: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := func(c tele.Context) error {
				called = true
				return nil
			}

			c := &fakeContext{sender: tt.sender, callback: tt.callback}
			err := OwnerOnly(tt.ownerID, testutil.NewTestLogger())(next)(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectCalled, called)
			assert.Len(t, c.sent, tt.expectSent)
			assert.Len(t, c.responses, tt.expectResp)
		})
	}
}

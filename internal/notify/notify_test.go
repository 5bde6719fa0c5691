package notify

import (
	"context"
	"testing"

	"ouma-web/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSubjectAndBody(t *testing.T) {
	session := &models.ChatSession{Company: "ACME", Email: "buyer@acme.test", Phone: "123"}
	session.ID = 9

	in := Inquiry{Session: session, Message: "Need <b>price</b>\nthanks", Source: "contact form"}

	assert.Equal(t, "New inquiry from ACME (#9)", Subject(in))

	body := Body(in)
	assert.Contains(t, body, "buyer@acme.test")
	assert.Contains(t, body, "contact form")
	assert.Contains(t, body, "Need &lt;b&gt;price&lt;/b&gt;<br>thanks")
	assert.NotContains(t, body, "Product")
}

func TestSubjectWithoutCompany(t *testing.T) {
	assert.Equal(t, "New inquiry from visitor (#0)", Subject(Inquiry{}))
}

func TestBuildMessageHeaders(t *testing.T) {
	session := &models.ChatSession{Email: "buyer@acme.test"}
	msg := BuildMessage("site@ouma.test", "sales@ouma.test", Inquiry{Session: session})

	assert.Equal(t, []string{"site@ouma.test"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"sales@ouma.test"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"buyer@acme.test"}, msg.GetHeader("Reply-To"))
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.InquiryReceived(context.Background(), Inquiry{}))
}

package getQuestions

import (
	"musaferBox/internal/http-server/handlers/chat/getQuestions/mocks"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetQuestionsHandler(t *testing.T) {
	t.Parallel()

	getter := mocks.NewQuestionsGetter(t)
	getter.On("Questions").Return([]string{"How do I book a trip?", "How can I cancel my booking?"})

	rr := httptest.NewRecorder()
	New(getter).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/chat/questions", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"OK","questions":["How do I book a trip?","How can I cancel my booking?"]}`, rr.Body.String())
}

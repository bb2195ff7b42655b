package oracle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mindstash/mindstash/internal/shared/domain"
)

type stubClient struct {
	reply string
	err   error
}

func (s *stubClient) Complete(ctx context.Context, prompt string) (string, error) {
	return s.reply, s.err
}

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  Route
	}{
		{"exact calendar", "CALENDAR", RouteCalendar},
		{"exact touch", "TOUCH", RouteDeferred},
		{"lowercase calendar", "calendar", RouteCalendar},
		{"lowercase touch", "touch", RouteDeferred},
		{"padded reply", "  CALENDAR \n", RouteCalendar},
		{"calendar in sentence", "This looks like a CALENDAR entry.", RouteCalendar},
		{"event keyword", "I'd call this an event", RouteCalendar},
		{"unexpected phrasing defaults deferred", "hard to say, maybe a reminder", RouteDeferred},
		{"empty reply defaults deferred", "", RouteDeferred},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := NewClassifier(&stubClient{reply: tt.reply})
			outcome := classifier.Classify(context.Background(), "some text")
			require.Equal(t, tt.want, outcome.Route)
			require.Empty(t, outcome.ErrorMessage)
		})
	}
}

func TestClassifier_OracleFailure(t *testing.T) {
	classifier := NewClassifier(&stubClient{err: &domain.ProtocolError{Message: "API error: Status code 500"}})

	outcome := classifier.Classify(context.Background(), "some text")
	require.Equal(t, RouteError, outcome.Route)
	require.Equal(t, "API error: Status code 500", outcome.ErrorMessage)
}

package handlers

import (
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/remindkit/remindkit/internal/engine"
)

func filterForQuery(t *testing.T, query string) (engine.Filter, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/v1/reminders?"+query, nil)
	return ParseFilter(c)
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    engine.Filter
		wantErr bool
	}{
		{
			name:  "defaults",
			query: "",
			want:  engine.Filter{Window: engine.WindowAll, Completion: engine.CompletionAll},
		},
		{
			name:  "search and window",
			query: "search=dentist&window=today",
			want:  engine.Filter{Search: "dentist", Window: engine.WindowToday, Completion: engine.CompletionAll},
		},
		{
			name:  "categories and priorities",
			query: "categories=work,health&priorities=2,3",
			want: engine.Filter{
				Window:     engine.WindowAll,
				Completion: engine.CompletionAll,
				Categories: []string{"work", "health"},
				Priorities: []int{2, 3},
			},
		},
		{
			name:  "completion filter",
			query: "completion=incomplete",
			want:  engine.Filter{Window: engine.WindowAll, Completion: engine.CompletionIncomplete},
		},
		{
			name:    "bad priority",
			query:   "priorities=high",
			wantErr: true,
		},
		{
			name:    "custom window requires both bounds",
			query:   "window=custom&from=2024-05-01",
			wantErr: true,
		},
		{
			name:    "custom window with bad date",
			query:   "window=custom&from=May%201&to=2024-05-10",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := filterForQuery(t, tt.query)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFilter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFilter() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseFilterCustomRange(t *testing.T) {
	got, err := filterForQuery(t, "window=custom&from=2024-05-01&to=2024-05-10")
	if err != nil {
		t.Fatalf("ParseFilter() error = %v", err)
	}
	if got.CustomRange == nil {
		t.Fatal("CustomRange is nil")
	}
	if got.CustomRange.Start.Day() != 1 || got.CustomRange.End.Day() != 10 {
		t.Errorf("CustomRange = %+v", got.CustomRange)
	}
}

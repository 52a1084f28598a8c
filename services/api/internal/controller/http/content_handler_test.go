package http

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"craftledger/services/api/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func contentRouter(uc *MockContentUseCase) http.Handler {
	return setupTestRouter(&Handlers{Content: NewContentHandler(uc, testLogger())})
}

func TestGetContent_NotFound(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	mockUseCase.On("GetContent", mock.Anything, "missing").Return(nil, fmt.Errorf("%w: missing", entity.ErrContentNotFound))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/content/missing", nil)
	contentRouter(mockUseCase).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "content not found: missing", env.Error)
}

func TestCreateContent_Success(t *testing.T) {
	publishDate := time.Date(2030, 1, 2, 15, 0, 0, 0, time.UTC)
	mockUseCase := new(MockContentUseCase)
	mockUseCase.On("CreateContent", mock.Anything, "c1", mock.MatchedBy(func(d entity.ContentDraft) bool {
		return d.Title == "Edge caching" &&
			d.Type == entity.ContentTypeVideo &&
			d.TierID == "t2" &&
			d.PublishDate != nil && d.PublishDate.Equal(publishDate)
	})).Return(&entity.ContentItem{
		ID:          "new-id",
		CreatorID:   "c1",
		Title:       "Edge caching",
		Type:        entity.ContentTypeVideo,
		TierID:      "t2",
		PublishedAt: publishDate,
		Status:      entity.StatusScheduled,
		Attachments: []entity.Attachment{},
	}, nil)

	body := `{"title":"Edge caching","type":"video","tierId":"t2","publishDate":"2030-01-02T15:00:00Z"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/content", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	contentRouter(mockUseCase).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := decode(t, w)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"status":"scheduled"`)
	mockUseCase.AssertExpectations(t)
}

func TestCreateContent_Validation(t *testing.T) {
	bodies := map[string]string{
		"missing title": `{"type":"video","tierId":"t1"}`,
		"bad type":      `{"title":"x","type":"podcast","tierId":"t1"}`,
		"missing tier":  `{"title":"x","type":"post"}`,
		"bad date":      `{"title":"x","type":"post","tierId":"t1","publishDate":"tomorrow"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			mockUseCase := new(MockContentUseCase)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/api/content", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			contentRouter(mockUseCase).ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockUseCase.AssertNotCalled(t, "CreateContent", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateContent_NotFound(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	mockUseCase.On("UpdateContent", mock.Anything, "c1", "missing", mock.Anything).
		Return(nil, fmt.Errorf("failed to update content: %w", fmt.Errorf("%w: missing", entity.ErrContentNotFound)))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/content/missing", bytes.NewBufferString(`{"title":"x","type":"post","tierId":"t1"}`))
	req.Header.Set("Content-Type", "application/json")
	contentRouter(mockUseCase).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeleteContent_Twice(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	mockUseCase.On("DeleteContent", mock.Anything, "c1", "content3").Return(nil).Once()
	mockUseCase.On("DeleteContent", mock.Anything, "c1", "content3").
		Return(fmt.Errorf("failed to delete content: %w", fmt.Errorf("%w: content3", entity.ErrContentNotFound))).Once()
	router := contentRouter(mockUseCase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/content/content3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"content3"}`, string(decode(t, w).Data))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("DELETE", "/api/content/content3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

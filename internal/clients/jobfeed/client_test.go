package jobfeed

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	return args.Get(0).(*http.Response), args.Error(1)
}

func searchResponseMock() (*http.Response, error) {
	file, err := os.ReadFile("testdata/search_response.json")

	return &http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(bytes.NewBuffer(file)),
	}, err
}

func Test_JobFeedClient_Search_ShouldBeSuccessful(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "https://feed.example.com/v1/postings/search?"+
			"keywords=backend+engineer&location=Dubai%2C+UAE&location_type=remote&page=0&per_page=20" &&
			req.Header.Get("X-Api-Key") == "test-key"
	})).Return(searchResponseMock())

	client := NewClient("https://feed.example.com", "test-key")
	client.SetHTTPClient(mockClient)

	params := SearchParameters{
		Keywords:     "backend engineer",
		Location:     "Dubai, UAE",
		LocationType: Remote,
		Page:         0,
		PerPage:      20,
	}
	result, err := client.Search(context.Background(), params)
	assert.NoError(err)

	assert.Equal("aggregate", result.Provider)
	assert.Equal(2, result.TotalCount)
	assert.Len(result.Postings, 2)
	assert.Equal("feed-1001", result.Postings[0].ID)
	assert.Equal("Backend Engineer", result.Postings[0].Title)
	assert.Equal("https://boards.example.com/acme/1001", result.Postings[0].CanonicalURL)
	assert.Equal("feed-1002", result.Postings[1].ID)
	assert.Nil(result.Postings[1].SalaryMin)
}

func Test_JobFeedClient_Search_InvalidParams_Fails(t *testing.T) {

	client := NewClient("https://feed.example.com", "test-key")

	_, err := client.Search(context.Background(), SearchParameters{})
	assert.Error(t, err)
}

func Test_SearchParameters_TooDeepPagination(t *testing.T) {

	params := SearchParameters{Keywords: "go", Page: 50, PerPage: 20}
	assert.ErrorIs(t, params.Validate(), ErrTooDeepPagination)
}

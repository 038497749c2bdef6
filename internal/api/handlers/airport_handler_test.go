package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/welldanyogia/webrana-resource-api/internal/models"
	"github.com/welldanyogia/webrana-resource-api/internal/repository"
	"github.com/welldanyogia/webrana-resource-api/tests/mocks"
)

var (
	heathrow = models.Airport{ID: "LHR", Name: "London Heathrow Airport", City: "London", Country: "United Kingdom", ICAO: "EGLL", Latitude: 51.4706, Longitude: -0.461941}
	kennedy  = models.Airport{ID: "JFK", Name: "John F Kennedy International Airport", City: "New York", Country: "United States", ICAO: "KJFK", Latitude: 40.639801, Longitude: -73.7789}
)

// AirportHandlerTestSuite is the test suite for AirportHandler
type AirportHandlerTestSuite struct {
	suite.Suite
	echo     *echo.Echo
	handler  *AirportHandler
	mockRepo *mocks.MockAirportRepository
}

// SetupTest runs before each test
func (s *AirportHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.mockRepo = new(mocks.MockAirportRepository)
	s.handler = NewAirportHandler(s.mockRepo)
}

// TearDownTest runs after each test
func (s *AirportHandlerTestSuite) TearDownTest() {
	s.mockRepo.AssertExpectations(s.T())
}

// TestAirportHandlerTestSuite runs the test suite
func TestAirportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AirportHandlerTestSuite))
}

func (s *AirportHandlerTestSuite) TestList() {
	c, rec := newContext(s.echo, http.MethodGet, "/airports", "", false)
	s.mockRepo.On("List", mock.Anything).Return([]models.Airport{kennedy, heathrow}, nil)

	s.NoError(s.handler.List(c))

	s.Equal(http.StatusOK, rec.Code)
	var doc struct {
		Data []struct {
			ID   string `json:"id"`
			Type string `json:"type"`
		} `json:"data"`
	}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &doc))
	s.Len(doc.Data, 2)
	s.Equal("JFK", doc.Data[0].ID)
	s.Equal("airport", doc.Data[0].Type)
}

func (s *AirportHandlerTestSuite) TestGet_CaseInsensitive() {
	c, rec := newContext(s.echo, http.MethodGet, "/airports/lhr", "", false)
	c.SetParamNames("id")
	c.SetParamValues("lhr")
	s.mockRepo.On("GetByID", mock.Anything, "LHR").Return(&heathrow, nil)

	s.NoError(s.handler.Get(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "London Heathrow Airport")
}

func (s *AirportHandlerTestSuite) TestGet_NotFound() {
	c, rec := newContext(s.echo, http.MethodGet, "/airports/ZZZ", "", false)
	c.SetParamNames("id")
	c.SetParamValues("ZZZ")
	s.mockRepo.On("GetByID", mock.Anything, "ZZZ").Return(nil, repository.ErrNotFound)

	s.NoError(s.handler.Get(c))

	s.Equal(http.StatusNotFound, rec.Code)
	resp, err := parseErrorResponse(rec)
	s.NoError(err)
	s.Equal("airport ZZZ not found", resp.Error)
}

func (s *AirportHandlerTestSuite) TestGet_InvalidCode() {
	c, rec := newContext(s.echo, http.MethodGet, "/airports/LONDON", "", false)
	c.SetParamNames("id")
	c.SetParamValues("LONDON")

	s.NoError(s.handler.Get(c))

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AirportHandlerTestSuite) TestDistance() {
	c, rec := newContext(s.echo, http.MethodPost, "/airports/distance", `{"from":"LHR","to":"jfk"}`, false)
	s.mockRepo.On("GetByID", mock.Anything, "LHR").Return(&heathrow, nil)
	s.mockRepo.On("GetByID", mock.Anything, "JFK").Return(&kennedy, nil)

	s.NoError(s.handler.Distance(c))

	s.Equal(http.StatusOK, rec.Code)
	var doc struct {
		Data struct {
			ID         string `json:"id"`
			Type       string `json:"type"`
			Attributes struct {
				Kilometers    float64 `json:"kilometers"`
				Miles         float64 `json:"miles"`
				NauticalMiles float64 `json:"nautical_miles"`
				From          struct {
					Name string `json:"name"`
				} `json:"from_airport"`
			} `json:"attributes"`
		} `json:"data"`
	}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &doc))
	s.Equal("LHR-JFK", doc.Data.ID)
	s.Equal("airport_distance", doc.Data.Type)
	s.InDelta(5540, doc.Data.Attributes.Kilometers, 15)
	s.InDelta(doc.Data.Attributes.Kilometers/1.609344, doc.Data.Attributes.Miles, 0.001)
	s.InDelta(doc.Data.Attributes.Kilometers/1.852, doc.Data.Attributes.NauticalMiles, 0.001)
	s.Equal("London Heathrow Airport", doc.Data.Attributes.From.Name)
}

func (s *AirportHandlerTestSuite) TestDistance_UnknownDestination() {
	c, rec := newContext(s.echo, http.MethodPost, "/airports/distance", `{"from":"LHR","to":"ZZZ"}`, false)
	s.mockRepo.On("GetByID", mock.Anything, "LHR").Return(&heathrow, nil)
	s.mockRepo.On("GetByID", mock.Anything, "ZZZ").Return(nil, repository.ErrNotFound)

	s.NoError(s.handler.Distance(c))

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *AirportHandlerTestSuite) TestDistance_MissingCode() {
	c, rec := newContext(s.echo, http.MethodPost, "/airports/distance", `{"to":"LHR"}`, false)

	s.NoError(s.handler.Distance(c))

	s.Equal(http.StatusBadRequest, rec.Code)
}

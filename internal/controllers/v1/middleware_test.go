package v1_test

import (
	"github.com/centsible/backend/internal/test"
)

func (suite *TestSuiteStandard) TestMissingToken() {
	recorder := test.Request(suite.T(), suite.router, "GET", "/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, 401)
}

func (suite *TestSuiteStandard) TestMalformedAuthorizationHeader() {
	recorder := test.Request(suite.T(), suite.router, "GET", "/v1/categories", nil, map[string]string{
		"Authorization": suite.token,
	})
	// The Bearer prefix is required
	test.AssertHTTPStatus(suite.T(), &recorder, 401)
}

func (suite *TestSuiteStandard) TestInvalidToken() {
	recorder := test.Request(suite.T(), suite.router, "GET", "/v1/categories", nil, map[string]string{
		"Authorization": "Bearer garbage",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, 401)
}

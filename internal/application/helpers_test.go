package application

import (
	"context"
	"encoding/json"

	"github.com/bnema/estate-admin-cli/internal/domain"
	"github.com/stretchr/testify/mock"
)

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

func jsonResponse(body string) domain.Response {
	return domain.Response{StatusCode: 200, ContentType: "application/json", JSON: json.RawMessage(body)}
}

func requestWith(method domain.Method) interface{} {
	return mock.MatchedBy(func(req domain.Request) bool {
		return req.MethodOrDefault() == method
	})
}

// Package mocks provides mock implementations for testing the session gateway.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the auth port interfaces. The mocks are generated using go:generate
// directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	tokens := mocks.NewMockTokenProvider(ctrl)
//	tokens.EXPECT().Login(gomock.Any(), "user", "pass").Return(payload, nil)
package mocks

// Generate mocks for the auth port interfaces from internal/ports:
// TokenProvider, ClaimsDecoder, SessionStore, ProfileFetcher, SessionEvents.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=ports_mock.go github.com/hskuntze/gestao-inventario-frontend-sub000/internal/ports TokenProvider,ClaimsDecoder,SessionStore,ProfileFetcher,SessionEvents

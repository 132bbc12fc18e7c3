// Package mocks provides mock implementations for testing the onboarding API.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockCandidatoRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(candidato, nil)
package mocks

// Generate mock for CandidatoRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=candidato_repository_mock.go github.com/onboardhq/onboard-ui-api/internal/core CandidatoRepository

// Generate mock for EmpresaRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=empresa_repository_mock.go github.com/onboardhq/onboard-ui-api/internal/core EmpresaRepository

// Generate mock for UsuarioRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=usuario_repository_mock.go github.com/onboardhq/onboard-ui-api/internal/core UsuarioRepository

// Generate mock for CursoRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=curso_repository_mock.go github.com/onboardhq/onboard-ui-api/internal/core CursoRepository

// Generate mock for DocumentoRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=documento_repository_mock.go github.com/onboardhq/onboard-ui-api/internal/core DocumentoRepository

// Generate mock for CredencialRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=credencial_repository_mock.go github.com/onboardhq/onboard-ui-api/internal/core CredencialRepository

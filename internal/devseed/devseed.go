// Package devseed populates a development database with demo onboarding
// data: companies, platform users, candidates with redeemable credentials,
// uploaded documents, and course progress.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/onboardhq/onboard-ui-api/internal/data"
	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	"github.com/onboardhq/onboard-ui-api/internal/domain/model"
	apperrors "github.com/onboardhq/onboard-ui-api/internal/errors"
	"github.com/onboardhq/onboard-ui-api/internal/service"
)

// DemoCandidatePassword is the password set for every seeded candidate so a
// developer can log in through the password flow immediately.
const DemoCandidatePassword = "senha123@"

// Services bundles the dependencies needed for development seeding.
type Services struct {
	DB          *sql.DB
	empresas    *service.EmpresaService
	usuarios    *service.UsuarioService
	candidatos  *service.CandidatoService
	credenciais *service.CredencialService
	documentos  *service.DocumentoService
	cursos      *service.CursoService
}

// NewServices constructs all required services for seeding using the provided DB.
func NewServices(db *sql.DB) Services {
	candidatoRepo := data.NewCandidatoRepo(db)
	credencialRepo := data.NewCredencialRepo(db)

	return Services{
		DB: db,
		empresas: service.NewEmpresaService(service.EmpresaServiceOptions{
			EmpresaRepo: data.NewEmpresaRepo(db),
		}),
		usuarios: service.NewUsuarioService(service.UsuarioServiceOptions{
			UsuarioRepo: data.NewUsuarioRepo(db),
		}),
		candidatos: service.NewCandidatoService(service.CandidatoServiceOptions{
			CandidatoRepo:  candidatoRepo,
			CredencialRepo: credencialRepo,
		}),
		credenciais: service.NewCredencialService(service.CredencialServiceOptions{
			CredencialRepo: credencialRepo,
			CandidatoRepo:  candidatoRepo,
		}),
		documentos: service.NewDocumentoService(service.DocumentoServiceOptions{
			DocumentoRepo: data.NewDocumentoRepo(db),
		}),
		cursos: service.NewCursoService(service.CursoServiceOptions{
			CursoRepo: data.NewCursoRepo(db),
		}),
	}
}

// Run executes the full development seeding workflow against the provided DB.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	failures := 0
	failures += seedEmpresas(ctx, svcs.empresas, logger)
	failures += seedUsuarios(ctx, svcs.usuarios, logger)
	failures += seedCandidatos(ctx, svcs, logger)
	failures += seedCursos(ctx, svcs, logger)
	if failures > 0 {
		return fmt.Errorf("%d seed errors; check logs", failures)
	}
	return nil
}

func seedEmpresas(ctx context.Context, svc *service.EmpresaService, logger *slog.Logger) int {
	failures := 0
	empresas := []*model.CreateEmpresaRequest{
		{
			Nome:                "TechWave Consultoria",
			CNPJ:                "12.345.678/0001-90",
			Planos:              "enterprise",
			EmailResponsavel:    "contato@techwave.com.br",
			TelefoneResponsavel: "(11) 98888-0001",
		},
		{
			Nome:                "Loja Aurora",
			CNPJ:                "98.765.432/0001-10",
			Planos:              "basico",
			EmailResponsavel:    "rh@lojaaurora.com.br",
			TelefoneResponsavel: "(21) 97777-0002",
		},
	}

	for _, req := range empresas {
		_, err := svc.Create(ctx, req)
		if skipConflict(ctx, logger, err, "empresa", req.Nome) {
			continue
		}
		if err != nil {
			logSeedError(ctx, logger, err, "empresa", req.Nome)
			failures++
			continue
		}
		logSeeded(ctx, logger, "empresa", req.Nome)
	}
	return failures
}

func seedUsuarios(ctx context.Context, svc *service.UsuarioService, logger *slog.Logger) int {
	failures := 0
	empresa := "TechWave Consultoria"
	usuarios := []*model.CreateUsuarioRequest{
		{Nome: "Administrador", Email: "admin@empresa.com", Role: domainauth.RoleAdmin},
		{Nome: "Recursos Humanos", Email: "rh@empresa.com", Role: domainauth.RoleRH, Empresa: &empresa},
	}

	for _, req := range usuarios {
		_, err := svc.Create(ctx, req)
		if skipConflict(ctx, logger, err, "usuario", req.Email) {
			continue
		}
		if err != nil {
			logSeedError(ctx, logger, err, "usuario", req.Email)
			failures++
			continue
		}
		logSeeded(ctx, logger, "usuario", req.Email)
	}
	return failures
}

type seedCandidato struct {
	create    model.CreateCandidatoRequest
	documents []model.CreateDocumentoRequest
}

func demoCandidatos() []seedCandidato {
	telefone := "(11) 96666-0003"
	empresa := "TechWave Consultoria"
	return []seedCandidato{
		{
			create: model.CreateCandidatoRequest{
				Nome:     "Maria Souza",
				CPF:      "123.456.789-00",
				Email:    "maria@gmail.com",
				Telefone: &telefone,
				Sexo:     "feminino",
				Estado:   "SP",
				Vaga:     "Desenvolvedora Backend",
				Empresa:  &empresa,
				Situacao: model.SituacaoEmAnalise,
			},
			documents: []model.CreateDocumentoRequest{
				{Filename: "rg.pdf", DocumentType: "rg", Email: "maria@gmail.com", FileContent: demoPDF},
				{Filename: "comprovante-residencia.pdf", DocumentType: "comprovante_residencia", Email: "maria@gmail.com", FileContent: demoPDF},
			},
		},
		{
			create: model.CreateCandidatoRequest{
				Nome:   "João Pereira",
				CPF:    "987.654.321-00",
				Email:  "candidato@gmail.com",
				Sexo:   "masculino",
				Estado: "RJ",
				Vaga:   "Analista de Dados",
			},
		},
	}
}

// demoPDF is a tiny base64 payload standing in for an uploaded file.
const demoPDF = "JVBERi0xLjQKJSBkZW1vCg=="

func seedCandidatos(ctx context.Context, svcs Services, logger *slog.Logger) int {
	failures := 0
	for _, seed := range demoCandidatos() {
		req := seed.create
		result, err := svcs.candidatos.Create(ctx, &req)
		if skipConflict(ctx, logger, err, "candidato", req.Email) {
			continue
		}
		if err != nil {
			logSeedError(ctx, logger, err, "candidato", req.Email)
			failures++
			continue
		}
		logSeeded(ctx, logger, "candidato", req.Email)

		// Redeem the invite so the candidate can log in right away.
		if pwErr := svcs.credenciais.DefinirSenha(ctx, result.InviteToken, DemoCandidatePassword); pwErr != nil {
			logSeedError(ctx, logger, pwErr, "credencial", req.Email)
			failures++
		}

		for _, doc := range seed.documents {
			if _, docErr := svcs.documentos.Create(ctx, &doc); docErr != nil {
				if apperrors.IsConflict(docErr) {
					continue
				}
				logSeedError(ctx, logger, docErr, "documento", doc.Filename)
				failures++
			}
		}
	}
	return failures
}

func seedCursos(ctx context.Context, svcs Services, logger *slog.Logger) int {
	candidato, err := svcs.candidatos.GetByEmail(ctx, "maria@gmail.com")
	if err != nil {
		if apperrors.IsNotFound(err) {
			return 0
		}
		logSeedError(ctx, logger, err, "curso", "maria@gmail.com")
		return 1
	}

	iniciado := true
	nivelAtual := 2
	unidadesFeitas := 5
	_, err = svcs.cursos.Create(ctx, &model.CreateCursoRequest{
		UsuarioID:      candidato.ID,
		Iniciado:       &iniciado,
		NivelInicial:   1,
		NivelAtual:     &nivelAtual,
		UnidadesFeitas: &unidadesFeitas,
	})
	if skipConflict(ctx, logger, err, "curso", candidato.Email) {
		return 0
	}
	if err != nil {
		logSeedError(ctx, logger, err, "curso", candidato.Email)
		return 1
	}
	logSeeded(ctx, logger, "curso", candidato.Email)
	return 0
}

func skipConflict(ctx context.Context, logger *slog.Logger, err error, kind, name string) bool {
	if !apperrors.IsConflict(err) {
		return false
	}
	if logger != nil {
		logger.InfoContext(ctx, kind+" already exists", "name", name)
	}
	return true
}

func logSeeded(ctx context.Context, logger *slog.Logger, kind, name string) {
	if logger != nil {
		logger.InfoContext(ctx, "created "+kind, "name", name)
	}
}

func logSeedError(ctx context.Context, logger *slog.Logger, err error, kind, name string) {
	if logger != nil {
		logger.ErrorContext(ctx, "failed to seed "+kind, "name", name, "error", err)
	}
}

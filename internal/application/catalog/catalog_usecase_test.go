package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunocardsx/sys-Obras/internal/application/catalog"
	"github.com/brunocardsx/sys-Obras/internal/application/dto"
	"github.com/brunocardsx/sys-Obras/internal/domain"
	"github.com/brunocardsx/sys-Obras/internal/domain/entity"
	"github.com/brunocardsx/sys-Obras/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeProjectRepo struct {
	projects map[string]*entity.Project
}

func (f *fakeProjectRepo) Create(_ context.Context, p *entity.Project) error {
	for _, existing := range f.projects {
		if existing.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	f.projects[p.ID] = p
	return nil
}

func (f *fakeProjectRepo) GetByID(_ context.Context, id string) (*entity.Project, error) {
	return f.projects[id], nil
}

func (f *fakeProjectRepo) List(_ context.Context) ([]*entity.Project, error) {
	out := make([]*entity.Project, 0, len(f.projects))
	for _, p := range f.projects {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProjectRepo) Update(_ context.Context, p *entity.Project) error {
	f.projects[p.ID] = p
	return nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.projects[id]; !ok {
		return false, nil
	}
	delete(f.projects, id)
	return true, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	for _, existing := range f.products {
		if existing.Code == p.Code || existing.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.products[id]; !ok {
		return false, nil
	}
	delete(f.products, id)
	return true, nil
}

// fakeInvoiceCounts implementa só as contagens usadas pela proteção
// referencial; as demais operações não são exercitadas por estes testes.
type fakeInvoiceCounts struct {
	repository.InvoiceRepository
	byProject map[string]int
	byProduct map[string]int
}

func (f *fakeInvoiceCounts) CountByProject(_ context.Context, projectID string) (int, error) {
	return f.byProject[projectID], nil
}

func (f *fakeInvoiceCounts) CountItemsByProduct(_ context.Context, productID string) (int, error) {
	return f.byProduct[productID], nil
}

func buildProjectUC(counts map[string]int) (*catalog.ProjectUseCase, *fakeProjectRepo) {
	repo := &fakeProjectRepo{projects: make(map[string]*entity.Project)}
	invoices := &fakeInvoiceCounts{byProject: counts, byProduct: map[string]int{}}
	return catalog.NewProjectUseCase(repo, invoices), repo
}

func buildProductUC(counts map[string]int) (*catalog.ProductUseCase, *fakeProductRepo) {
	repo := &fakeProductRepo{products: make(map[string]*entity.Product)}
	invoices := &fakeInvoiceCounts{byProject: map[string]int{}, byProduct: counts}
	return catalog.NewProductUseCase(repo, invoices), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Obras
// ──────────────────────────────────────────────────────────────────────────────

func TestProjectCreate_EGetByID(t *testing.T) {
	uc, _ := buildProjectUC(nil)

	out, err := uc.Create(context.Background(), dto.CreateProjectRequest{
		Name:    "Residencial Aurora",
		Address: "Rua das Acácias, 120",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)

	got, err := uc.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, "Residencial Aurora", got.Name)
	assert.Equal(t, "Rua das Acácias, 120", got.Address)
}

func TestProjectCreate_NomeDuplicado(t *testing.T) {
	uc, _ := buildProjectUC(nil)

	_, err := uc.Create(context.Background(), dto.CreateProjectRequest{Name: "Residencial Aurora"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateProjectRequest{Name: "Residencial Aurora"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProjectCreate_SemNome(t *testing.T) {
	uc, _ := buildProjectUC(nil)

	_, err := uc.Create(context.Background(), dto.CreateProjectRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Proteção referencial: obra com notas não pode ser excluída; o erro carrega
// a contagem de dependentes.
func TestProjectDelete_ObraComNotas(t *testing.T) {
	uc, repo := buildProjectUC(map[string]int{"obra-1": 3})
	repo.projects["obra-1"] = &entity.Project{ID: "obra-1", Name: "Residencial Aurora"}

	err := uc.Delete(context.Background(), "obra-1")
	require.Error(t, err)

	var inUse *domain.InUseError
	require.True(t, errors.As(err, &inUse), "deve ser domain.InUseError, obteve %T", err)
	assert.Equal(t, 3, inUse.Count)
	assert.Equal(t, "obra", inUse.Resource)

	_, ok := repo.projects["obra-1"]
	assert.True(t, ok, "a obra não pode ter sido removida")
}

func TestProjectDelete_ObraSemNotas(t *testing.T) {
	uc, repo := buildProjectUC(nil)
	repo.projects["obra-1"] = &entity.Project{ID: "obra-1", Name: "Residencial Aurora"}

	require.NoError(t, uc.Delete(context.Background(), "obra-1"))
	assert.Empty(t, repo.projects)
}

func TestProjectDelete_ObraInexistente(t *testing.T) {
	uc, _ := buildProjectUC(nil)

	err := uc.Delete(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectUpdate_ParcialPreservaCampos(t *testing.T) {
	uc, repo := buildProjectUC(nil)
	repo.projects["obra-1"] = &entity.Project{ID: "obra-1", Name: "Residencial Aurora", Address: "Rua A"}

	novoNome := "Residencial Aurora II"
	out, err := uc.Update(context.Background(), "obra-1", dto.UpdateProjectRequest{Name: &novoNome})
	require.NoError(t, err)
	assert.Equal(t, "Residencial Aurora II", out.Name)
	assert.Equal(t, "Rua A", out.Address, "endereço ausente no payload não pode ser apagado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Produtos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_CodigoDuplicado(t *testing.T) {
	uc, _ := buildProductUC(nil)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Code: "CIM-50", Name: "Cimento CP-II"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{Code: "CIM-50", Name: "Outro cimento"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_CustoNegativo(t *testing.T) {
	uc, _ := buildProductUC(nil)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Code: "CIM-50", Name: "Cimento CP-II",
		CostPrice: decimal.RequireFromString("-10.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductDelete_ProdutoReferenciado(t *testing.T) {
	uc, repo := buildProductUC(map[string]int{"prod-1": 5})
	repo.products["prod-1"] = &entity.Product{ID: "prod-1", Code: "CIM-50", Name: "Cimento CP-II"}

	err := uc.Delete(context.Background(), "prod-1")
	require.Error(t, err)

	var inUse *domain.InUseError
	require.True(t, errors.As(err, &inUse))
	assert.Equal(t, 5, inUse.Count)
	assert.Equal(t, "produto", inUse.Resource)

	_, ok := repo.products["prod-1"]
	assert.True(t, ok, "o produto não pode ter sido removido")
}

func TestProductDelete_ProdutoSemReferencias(t *testing.T) {
	uc, repo := buildProductUC(nil)
	repo.products["prod-1"] = &entity.Product{ID: "prod-1", Code: "CIM-50", Name: "Cimento CP-II"}

	require.NoError(t, uc.Delete(context.Background(), "prod-1"))
	assert.Empty(t, repo.products)
}

func TestProductUpdate_CustoArredondado(t *testing.T) {
	uc, repo := buildProductUC(nil)
	repo.products["prod-1"] = &entity.Product{ID: "prod-1", Code: "CIM-50", Name: "Cimento CP-II"}

	cost := decimal.RequireFromString("32.555")
	out, err := uc.Update(context.Background(), "prod-1", dto.UpdateProductRequest{CostPrice: &cost})
	require.NoError(t, err)
	assert.True(t, out.CostPrice.Equal(decimal.RequireFromString("32.56")),
		"custo deve ser arredondado a 2 casas, obteve %s", out.CostPrice)
}

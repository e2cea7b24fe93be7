package billing_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tour-invoice-desk/internal/application/billing"
	"github.com/jhoicas/tour-invoice-desk/internal/application/composer"
	"github.com/jhoicas/tour-invoice-desk/internal/domain"
	"github.com/jhoicas/tour-invoice-desk/pkg/logger"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakeSource struct {
	inv *composer.Invoice
	err error
}

func (f *fakeSource) GetComposedInvoice(context.Context) (*composer.Invoice, error) {
	return f.inv, f.err
}

type fakeGenerator struct {
	out   []byte
	err   error
	calls int
}

func (f *fakeGenerator) GenerateInvoicePDF(context.Context, *composer.Invoice) ([]byte, error) {
	f.calls++
	return f.out, f.err
}

type fakeText struct {
	out string
	err error
}

func (f *fakeText) RenderText(*composer.Invoice) (string, error) { return f.out, f.err }

type fakeStore struct {
	files map[string][]byte
	err   error
}

func (f *fakeStore) Commit(_ context.Context, path string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.files == nil {
		f.files = map[string][]byte{}
	}
	f.files[path] = data
	return path, nil
}

func invoice() *composer.Invoice {
	return &composer.Invoice{Customer: composer.CustomerBlock{Name: "A. Rao", InvoiceNumber: "INV-001"}}
}

type fixture struct {
	source *fakeSource
	gen    *fakeGenerator
	text   *fakeText
	store  *fakeStore
	uc     *billing.InvoiceOutputUseCase
}

func newFixture() *fixture {
	f := &fixture{
		source: &fakeSource{inv: invoice()},
		gen:    &fakeGenerator{out: []byte("%PDF-1.3 fake")},
		text:   &fakeText{out: "Ridhi Sidhi Tours & Travels\nGrand Total: Rs. 6500\n"},
		store:  &fakeStore{},
	}
	f.uc = billing.NewInvoiceOutputUseCase(f.source, f.gen, f.text, f.store,
		billing.OutputConfig{ExportDir: "exports", SpoolDir: "spool"}, logger.Nop())
	return f
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestPreview_ReturnsText(t *testing.T) {
	f := newFixture()
	text, err := f.uc.Preview(context.Background())
	require.NoError(t, err)
	assert.Contains(t, text, "Grand Total")
	assert.Empty(t, f.store.files)
}

func TestPrint_SpoolsText(t *testing.T) {
	f := newFixture()
	path, err := f.uc.Print(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("spool", "print_Invoice_INV-001.txt"), path)
	assert.Equal(t, f.text.out, string(f.store.files[path]))
}

func TestExportPDF_DefaultAndExplicitPath(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	path, err := f.uc.ExportPDF(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("exports", "Invoice_INV-001.pdf"), path)
	assert.Equal(t, f.gen.out, f.store.files[path])

	path, err = f.uc.ExportPDF(ctx, "/tmp/custom.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.pdf", path)
}

func TestDownloadInvoicePDF(t *testing.T) {
	f := newFixture()
	pdf, name, err := f.uc.DownloadInvoicePDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Invoice_INV-001.pdf", name)
	assert.Equal(t, f.gen.out, pdf)
	assert.Empty(t, f.store.files)
}

func TestRender_Dispatch(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	res, err := f.uc.Render(ctx, billing.MediumScreen, "")
	require.NoError(t, err)
	assert.Equal(t, f.text.out, res.Text)

	res, err = f.uc.Render(ctx, billing.MediumPrinter, "")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Path)

	res, err = f.uc.Render(ctx, billing.MediumFile, "out.pdf")
	require.NoError(t, err)
	assert.Equal(t, "out.pdf", res.Path)

	_, err = f.uc.Render(ctx, billing.Medium("fax"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRender_NotFinalizedPassesThrough(t *testing.T) {
	f := newFixture()
	f.source.inv = nil
	f.source.err = domain.ErrNotFinalized

	_, err := f.uc.Preview(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFinalized)
	assert.NotErrorIs(t, err, domain.ErrRender)

	_, err = f.uc.ExportPDF(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNotFinalized)
	assert.Zero(t, f.gen.calls)
}

func TestRender_FailuresWrapErrRender(t *testing.T) {
	boom := errors.New("disk full")

	f := newFixture()
	f.store.err = boom
	_, err := f.uc.ExportPDF(context.Background(), "x.pdf")
	assert.ErrorIs(t, err, domain.ErrRender)
	assert.ErrorIs(t, err, boom)

	f = newFixture()
	f.gen.err = boom
	_, _, err = f.uc.DownloadInvoicePDF(context.Background())
	assert.ErrorIs(t, err, domain.ErrRender)

	f = newFixture()
	f.text.err = boom
	_, err = f.uc.Print(context.Background())
	assert.ErrorIs(t, err, domain.ErrRender)
	assert.Empty(t, f.store.files)
}

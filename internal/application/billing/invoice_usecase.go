package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador-api/internal/application/dto"
	"github.com/jhoicas/facturador-api/internal/domain"
	"github.com/jhoicas/facturador-api/internal/domain/entity"
	"github.com/jhoicas/facturador-api/internal/domain/repository"
)

// InvoiceUseCase composición de facturas: crea y mantiene el total como la suma
// de quantity * unit_price de sus líneas, con el precio congelado al facturar.
type InvoiceUseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
	itemRepo     repository.ItemRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	txRunner TxRunner,
	customerRepo repository.CustomerRepository,
	itemRepo repository.ItemRepository,
	invoiceRepo repository.InvoiceRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		itemRepo:     itemRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// Create crea la factura con sus líneas en una sola transacción.
// Las líneas que referencian ítems inexistentes se omiten del total y se
// reportan en warnings en vez de fallar ni descartarse en silencio.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.CreateInvoiceResponse, error) {
	if in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validateQuantities(in.Items); err != nil {
		return nil, err
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		Total:      decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	var warnings []string

	err = uc.txRunner.Run(ctx, func(
		_ repository.CustomerRepository,
		itemRepo repository.ItemRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		// Cabecera con total 0; el total definitivo se persiste al final.
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		total, warns, err := insertLines(itemRepo, invoiceRepo, inv.ID, in.Items)
		if err != nil {
			return err
		}
		warnings = warns
		inv.Total = total
		inv.UpdatedAt = time.Now()
		return invoiceRepo.Update(inv)
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateInvoiceResponse{ID: inv.ID, Total: inv.Total, Warnings: warnings}, nil
}

// Update reasigna el cliente y/o reemplaza las líneas de la factura.
// Si llegan líneas nuevas se borran todas las anteriores y el total se
// recalcula desde cero, todo dentro de una transacción. Si Items viene nil,
// líneas y total quedan intactos aunque cambie el cliente.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*dto.UpdateInvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if in.CustomerID != nil {
		customer, err := uc.customerRepo.GetByID(*in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		inv.CustomerID = *in.CustomerID
	}
	if in.Items != nil {
		if err := validateQuantities(*in.Items); err != nil {
			return nil, err
		}
	}

	var warnings []string
	err = uc.txRunner.Run(ctx, func(
		_ repository.CustomerRepository,
		itemRepo repository.ItemRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		if in.Items != nil {
			if err := invoiceRepo.DeleteLinesByInvoiceID(inv.ID); err != nil {
				return err
			}
			total, warns, err := insertLines(itemRepo, invoiceRepo, inv.ID, *in.Items)
			if err != nil {
				return err
			}
			warnings = warns
			inv.Total = total
		}
		inv.UpdatedAt = time.Now()
		return invoiceRepo.Update(inv)
	})
	if err != nil {
		return nil, err
	}

	return &dto.UpdateInvoiceResponse{Message: "factura actualizada", ID: inv.ID, Warnings: warnings}, nil
}

// Delete elimina la factura y antes todas sus líneas (integridad referencial),
// en una sola transacción.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.CustomerRepository,
		_ repository.ItemRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		if err := invoiceRepo.DeleteLinesByInvoiceID(id); err != nil {
			return err
		}
		return invoiceRepo.Delete(id)
	})
}

// List devuelve todas las facturas con nombre de cliente y total.
func (uc *InvoiceUseCase) List() ([]*dto.InvoiceSummaryResponse, error) {
	summaries, err := uc.invoiceRepo.ListSummaries()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, &dto.InvoiceSummaryResponse{
			ID:           s.ID,
			CustomerName: s.CustomerName,
			Total:        s.Total,
		})
	}
	return out, nil
}

// Get devuelve la factura con su detalle completo.
func (uc *InvoiceUseCase) Get(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.invoiceRepo.GetLinesByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	customerName := ""
	if customer, err := uc.customerRepo.GetByID(inv.CustomerID); err == nil && customer != nil {
		customerName = customer.Name
	}
	resp := &dto.InvoiceResponse{
		ID:           inv.ID,
		CustomerID:   inv.CustomerID,
		CustomerName: customerName,
		Total:        inv.Total,
		Lines:        make([]dto.InvoiceLineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		itemName := ""
		if item, err := uc.itemRepo.GetByID(l.ItemID); err == nil && item != nil {
			itemName = item.Name
		}
		resp.Lines = append(resp.Lines, dto.InvoiceLineResponse{
			ID:        l.ID,
			ItemID:    l.ItemID,
			ItemName:  itemName,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	return resp, nil
}

// validateQuantities exige cantidades positivas en todas las líneas solicitadas.
func validateQuantities(items []dto.InvoiceItemRequest) error {
	for _, it := range items {
		if it.ItemID == "" || !it.Quantity.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// insertLines procesa las líneas solicitadas: resuelve cada ítem, congela su
// precio vigente en la línea y acumula el total. Los ítems inexistentes se
// omiten y se reportan como warning.
func insertLines(
	itemRepo repository.ItemRepository,
	invoiceRepo repository.InvoiceRepository,
	invoiceID string,
	items []dto.InvoiceItemRequest,
) (decimal.Decimal, []string, error) {
	total := decimal.Zero
	var warnings []string
	for _, req := range items {
		item, err := itemRepo.GetByID(req.ItemID)
		if err != nil {
			return decimal.Zero, nil, err
		}
		if item == nil {
			warnings = append(warnings, fmt.Sprintf("ítem %s no encontrado; línea omitida", req.ItemID))
			continue
		}
		line := &entity.InvoiceLine{
			ID:        uuid.New().String(),
			InvoiceID: invoiceID,
			ItemID:    item.ID,
			Quantity:  req.Quantity,
			UnitPrice: item.Price,
		}
		if err := invoiceRepo.CreateLine(line); err != nil {
			return decimal.Zero, nil, err
		}
		total = total.Add(line.Subtotal())
	}
	return total, warnings, nil
}

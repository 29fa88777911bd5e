package payments

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Alquiler-api/internal/application/dto"
	"github.com/jhoicas/Alquiler-api/internal/domain"
	"github.com/jhoicas/Alquiler-api/internal/domain/entity"
	"github.com/jhoicas/Alquiler-api/internal/domain/repository"
	"github.com/jhoicas/Alquiler-api/internal/domain/sequence"
)

// UseCase es el libro de pagos: aplica cobros a pedidos, espeja los ingresos
// en caja, registra egresos de caja chica y arma el reporte de caja.
// Pedido y espejo de caja se escriben en una sola transacción: o se persiste
// la mutación completa o nada.
type UseCase struct {
	txRunner TxRunner
	cash     repository.CashRepository
	codes    CodeIssuer
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, cash repository.CashRepository, codes CodeIssuer) *UseCase {
	return &UseCase{txRunner: txRunner, cash: cash, codes: codes}
}

func validMethod(m string) bool {
	switch m {
	case entity.MethodEfectivo, entity.MethodCheque, entity.MethodTransferencia, entity.MethodDeposito:
		return true
	}
	return false
}

// ApplyPayment aplica un pago al saldo del pedido.
//
//   - CONTADO: se aplica el saldo completo; recibir menos es rechazo, el
//     vuelto es el excedente.
//   - PARCIAL: se aplica min(recibido, saldo).
//   - CREDITO: no se aplica dinero ni se toca caja; el registro queda como
//     anotación de venta diferida.
//
// El registro recibe un código RC; si mueve dinero, un asiento de caja
// INCOME comparte ese código y monto. El asiento lleva categoría VENTA en
// cobros previos al despacho y CARTERA cuando recupera saldo de un pedido
// ya despachado.
func (uc *UseCase) ApplyPayment(ctx context.Context, orderID string, in dto.ApplyPaymentRequest, user string) (*dto.PaymentResultResponse, error) {
	switch in.Type {
	case entity.PaymentContado, entity.PaymentParcial, entity.PaymentCredito:
	default:
		return nil, domain.NewValidation("tipo de pago desconocido: %s", in.Type)
	}
	if in.Type != entity.PaymentCredito && !validMethod(in.Method) {
		return nil, domain.NewValidation("método de pago desconocido: %s", in.Method)
	}
	if in.Received.IsNegative() {
		return nil, domain.NewValidation("el monto recibido no puede ser negativo")
	}

	receiptID, err := uc.codes.NextCode(ctx, sequence.PrefixReceipt)
	if err != nil {
		return nil, err
	}

	var result dto.PaymentResultResponse
	err = uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository, cashRepo repository.CashRepository) error {
		o, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		if o.Status == entity.StatusAnulado {
			return domain.ErrOrderVoided
		}
		outstanding := o.Outstanding()
		if outstanding.IsZero() {
			return domain.ErrNothingPending
		}

		now := time.Now()
		received := in.Received
		method := in.Method
		var applied, change decimal.Decimal
		switch in.Type {
		case entity.PaymentContado:
			applied = outstanding
			if received.LessThan(applied) {
				return domain.NewValidation("monto recibido insuficiente: recibido %s, requerido %s", received, applied)
			}
			change = received.Sub(applied)
		case entity.PaymentParcial:
			if !received.GreaterThan(decimal.Zero) {
				return domain.NewValidation("un abono parcial requiere un monto recibido mayor a cero")
			}
			applied = decimal.Min(received, outstanding)
			change = received.Sub(applied)
		case entity.PaymentCredito:
			received = decimal.Zero
			applied = decimal.Zero
			change = decimal.Zero
			method = entity.MethodCreditoTotal
		}

		record := entity.PaymentRecord{
			ID:       receiptID,
			Date:     now,
			Amount:   applied,
			Received: received,
			Change:   change,
			Type:     in.Type,
			Method:   method,
			User:     user,
		}
		switch in.Method {
		case entity.MethodTransferencia, entity.MethodDeposito:
			record.Bank = in.Bank
		case entity.MethodCheque:
			if in.Check != nil {
				record.Check = &entity.CheckInfo{
					Client:  in.Check.Client,
					Bank:    in.Check.Bank,
					Number:  in.Check.Number,
					Account: in.Check.Account,
					Obs:     in.Check.Obs,
				}
			}
		}

		o.Payments = append(o.Payments, record)
		o.PaidAmount = o.PaidAmount.Add(applied)
		o.UpdatedAt = now
		if err := orderRepo.Update(o); err != nil {
			return err
		}

		if applied.GreaterThan(decimal.Zero) {
			category := entity.CashCategoryVenta
			if o.Status != entity.StatusProforma && o.Status != entity.StatusConfirmada {
				category = entity.CashCategoryCartera
			}
			mirror := &entity.CashTransaction{
				ID:       receiptID,
				OrderID:  o.ID,
				Amount:   applied,
				Change:   change,
				Type:     entity.CashIncome,
				Category: category,
				Method:   method,
				Date:     now,
				User:     user,
			}
			if err := cashRepo.Create(mirror); err != nil {
				return err
			}
		}

		result = dto.PaymentResultResponse{
			ReceiptID:  receiptID,
			Applied:    applied,
			Change:     change,
			NewBalance: o.Outstanding(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ApplyNoveltyChargeInTx cobra el valor de reposición de novedades usando los
// repositorios del caller (misma transacción). El cobro es todo o nada:
// received debe cubrir amountOwed. Total y PaidAmount del pedido suben juntos
// por amountOwed, de modo que el saldo queda en cero y la caja registra el
// ingreso con el mismo código RC, como recuperación de CARTERA.
func (uc *UseCase) ApplyNoveltyChargeInTx(
	ctx context.Context,
	orderRepo repository.OrderRepository,
	cashRepo repository.CashRepository,
	o *entity.Order,
	amountOwed, received decimal.Decimal,
	method, bank, user string,
	now time.Time,
) (receiptID string, change decimal.Decimal, err error) {
	if !validMethod(method) {
		return "", decimal.Zero, domain.NewValidation("método de pago desconocido: %s", method)
	}
	if received.LessThan(amountOwed) {
		return "", decimal.Zero, domain.NewValidation("el cobro de novedades es todo o nada: recibido %s, requerido %s", received, amountOwed)
	}
	receiptID, err = uc.codes.NextCode(ctx, sequence.PrefixReceipt)
	if err != nil {
		return "", decimal.Zero, err
	}
	change = received.Sub(amountOwed)

	o.Payments = append(o.Payments, entity.PaymentRecord{
		ID:       receiptID,
		Date:     now,
		Amount:   amountOwed,
		Received: received,
		Change:   change,
		Type:     entity.PaymentContado,
		Method:   method,
		Bank:     bank,
		User:     user,
	})
	o.Total = o.Total.Add(amountOwed)
	o.PaidAmount = o.PaidAmount.Add(amountOwed)

	mirror := &entity.CashTransaction{
		ID:       receiptID,
		OrderID:  o.ID,
		Amount:   amountOwed,
		Change:   change,
		Type:     entity.CashIncome,
		Category: entity.CashCategoryCartera,
		Method:   method,
		Date:     now,
		User:     user,
	}
	if err := cashRepo.Create(mirror); err != nil {
		return "", decimal.Zero, err
	}
	return receiptID, change, nil
}

// RegisterExpense registra un egreso de caja con vale CC.
func (uc *UseCase) RegisterExpense(ctx context.Context, in dto.ExpenseRequest, user string) (*entity.CashTransaction, error) {
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.NewValidation("el valor del egreso debe ser mayor a cero")
	}
	if in.Reason == "" {
		return nil, domain.NewValidation("valor y motivo son obligatorios")
	}
	category := in.Category
	switch category {
	case "":
		category = entity.CashCategoryCajaChica
	case entity.CashCategoryGasto, entity.CashCategoryCajaChica:
	default:
		return nil, domain.NewValidation("categoría de egreso desconocida: %s", category)
	}
	method := in.Method
	if method == "" {
		method = entity.MethodEfectivo
	}

	voucherID, err := uc.codes.NextCode(ctx, sequence.PrefixVoucher)
	if err != nil {
		return nil, err
	}
	tx := &entity.CashTransaction{
		ID:          voucherID,
		Amount:      in.Amount,
		Change:      decimal.Zero,
		Type:        entity.CashExpense,
		Category:    category,
		Reason:      in.Reason,
		Beneficiary: in.Beneficiary,
		Method:      method,
		Date:        time.Now(),
		User:        user,
	}
	if err := uc.cash.Create(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Report arma el reporte de caja del rango dado: totales de ingresos,
// egresos y vueltos, y el balance Σingresos − Σegresos.
func (uc *UseCase) Report(from, to time.Time) (*dto.CashReportResponse, error) {
	entries, err := uc.cash.ListBetween(from, to)
	if err != nil {
		return nil, err
	}
	income := decimal.Zero
	expense := decimal.Zero
	changeTotal := decimal.Zero
	out := make([]dto.CashEntryResponse, 0, len(entries))
	for _, e := range entries {
		switch e.Type {
		case entity.CashIncome:
			income = income.Add(e.Amount)
		case entity.CashExpense:
			expense = expense.Add(e.Amount)
		}
		changeTotal = changeTotal.Add(e.Change)
		out = append(out, dto.FromCashTransaction(e))
	}
	return &dto.CashReportResponse{
		From:        from,
		To:          to,
		Income:      income,
		Expense:     expense,
		ChangeTotal: changeTotal,
		Balance:     income.Sub(expense),
		Entries:     out,
	}, nil
}

// EntriesByOrder lista los asientos de caja ligados a un pedido.
func (uc *UseCase) EntriesByOrder(orderID string) ([]dto.CashEntryResponse, error) {
	entries, err := uc.cash.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CashEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.FromCashTransaction(e))
	}
	return out, nil
}

// DeleteEntry anula administrativamente un asiento de caja.
func (uc *UseCase) DeleteEntry(id string) error {
	e, err := uc.cash.GetByID(id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.cash.Delete(id)
}

package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/auth"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/billing"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/dto"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain"
)

func num(s string) *dto.Numeric {
	n := dto.Numeric(s)
	return &n
}

func item(id, qty, price string) dto.CartItemRequest {
	return dto.CartItemRequest{IDProducto: num(id), Cantidad: num(qty), PrecioUnitario: num(price)}
}

var cliente = &auth.Session{ID: "s1", UserID: 5, Username: "ana", Role: "cliente"}

func newSaleUC() (*billing.CreateSaleUseCase, *fakeTxRunner, *recordingPublisher) {
	runner := &fakeTxRunner{store: newMemSales()}
	pub := &recordingPublisher{}
	return billing.NewCreateSaleUseCase(runner, pub), runner, pub
}

func TestCreateSale_EjemploTotales(t *testing.T) {
	uc, runner, pub := newSaleUC()

	out, err := uc.CreateSale(context.Background(), cliente, dto.CreateSaleRequest{
		Items: []dto.CartItemRequest{item("1", "2", "10.00"), item("2", "1", "5.00")},
	})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, "25.00", out.Subtotal.StringFixed(2))
	assert.Equal(t, "3.00", out.IVA.StringFixed(2))
	assert.Equal(t, "28.00", out.Total.StringFixed(2))
	assert.Equal(t, "F000001", out.Factura)

	sales, details := runner.store.count()
	assert.Equal(t, 1, sales)
	assert.Equal(t, 2, details)

	stored, _ := runner.store.reader().GetByID(context.Background(), out.IDVenta)
	require.NotNil(t, stored)
	assert.Equal(t, "Efectivo", stored.PaymentMethod, "método de pago por defecto")
	assert.Equal(t, int64(5), *stored.UserID)
	assert.True(t, stored.Total.Equal(stored.Subtotal.Add(stored.Tax)))

	require.Len(t, pub.sales, 1)
	assert.Equal(t, "F000001", pub.sales[0].InvoiceCode)
}

func TestCreateSale_AceptaNumerosYCadenas(t *testing.T) {
	uc, _, _ := newSaleUC()
	out, err := uc.CreateSale(context.Background(), cliente, dto.CreateSaleRequest{
		Items:      []dto.CartItemRequest{item("3", "3", "1.10")},
		MetodoPago: "Tarjeta",
	})
	require.NoError(t, err)
	assert.Equal(t, "3.30", out.Subtotal.StringFixed(2))
	assert.Equal(t, "0.40", out.IVA.StringFixed(2))
	assert.Equal(t, "3.70", out.Total.StringFixed(2))
}

func TestCreateSale_SinSesion(t *testing.T) {
	uc, runner, _ := newSaleUC()
	_, err := uc.CreateSale(context.Background(), nil, dto.CreateSaleRequest{Items: []dto.CartItemRequest{item("1", "1", "1")}})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Equal(t, 0, runner.commits+runner.rollbacks)
}

func TestCreateSale_CarritoVacioNoCreaVenta(t *testing.T) {
	uc, runner, _ := newSaleUC()
	_, err := uc.CreateSale(context.Background(), cliente, dto.CreateSaleRequest{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "El carrito está vacío")

	sales, _ := runner.store.count()
	assert.Equal(t, 0, sales)
	assert.Equal(t, 0, runner.commits)
}

func TestCreateSale_LineasIncompletasOInvalidas(t *testing.T) {
	cases := []struct {
		name string
		item dto.CartItemRequest
		msg  string
	}{
		{"sin producto", dto.CartItemRequest{Cantidad: num("1"), PrecioUnitario: num("1")}, "Falta id_producto"},
		{"sin cantidad", dto.CartItemRequest{IDProducto: num("9"), PrecioUnitario: num("1")}, "Falta cantidad o precio en el producto 9"},
		{"sin precio", dto.CartItemRequest{IDProducto: num("9"), Cantidad: num("1")}, "Falta cantidad o precio en el producto 9"},
		{"cantidad decimal", item("9", "1.5", "1"), "Cantidad o precio inválido en el producto 9"},
		{"cantidad cero", item("9", "0", "1"), "Cantidad o precio inválido en el producto 9"},
		{"cantidad fuera de INTEGER", item("9", "3000000000", "1"), "Cantidad o precio inválido en el producto 9"},
		{"precio texto", item("9", "1", "abc"), "Cantidad o precio inválido en el producto 9"},
		{"precio negativo", item("9", "1", "-2"), "Cantidad o precio inválido en el producto 9"},
		{"producto inválido", item("x", "1", "1"), "id_producto inválido"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, runner, _ := newSaleUC()
			_, err := uc.CreateSale(context.Background(), cliente, dto.CreateSaleRequest{
				Items: []dto.CartItemRequest{item("1", "1", "1"), tc.item},
			})
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tc.msg)
			assert.Equal(t, 0, runner.commits)
		})
	}
}

func TestCreateSale_FalloEnLineaHaceRollbackDeCabecera(t *testing.T) {
	uc, runner, pub := newSaleUC()
	runner.store.failProductID = 2

	_, err := uc.CreateSale(context.Background(), cliente, dto.CreateSaleRequest{
		Items: []dto.CartItemRequest{item("1", "1", "10"), item("2", "1", "5")},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	sales, details := runner.store.count()
	assert.Equal(t, 0, sales, "sin cabecera huérfana")
	assert.Equal(t, 0, details)
	assert.Equal(t, 1, runner.rollbacks)
	assert.Empty(t, pub.sales, "no se publica una venta revertida")
}

func TestCreateSale_CodigosEstrictamenteCrecientes(t *testing.T) {
	uc, runner, _ := newSaleUC()
	ctx := context.Background()
	req := dto.CreateSaleRequest{Items: []dto.CartItemRequest{item("1", "1", "1")}}

	var codes []string
	for i := 0; i < 3; i++ {
		out, err := uc.CreateSale(ctx, cliente, req)
		require.NoError(t, err)
		codes = append(codes, out.Factura)
	}

	// Una venta fallida consume número pero no rompe el orden.
	runner.store.failProductID = 1
	_, err := uc.CreateSale(ctx, cliente, req)
	require.Error(t, err)
	runner.store.failProductID = 0

	out, err := uc.CreateSale(ctx, cliente, req)
	require.NoError(t, err)
	codes = append(codes, out.Factura)

	assert.Equal(t, []string{"F000001", "F000002", "F000003", "F000005"}, codes)
	for i := 1; i < len(codes); i++ {
		assert.Greater(t, codes[i], codes[i-1])
	}
}

func TestCreateSale_FalloAlPublicarNoRevierteVenta(t *testing.T) {
	runner := &fakeTxRunner{store: newMemSales()}
	uc := billing.NewCreateSaleUseCase(runner, &recordingPublisher{fail: true})

	out, err := uc.CreateSale(context.Background(), cliente, dto.CreateSaleRequest{Items: []dto.CartItemRequest{item("1", "1", "1")}})
	require.NoError(t, err)
	assert.Equal(t, "F000001", out.Factura)
	assert.Equal(t, 1, runner.commits)
}

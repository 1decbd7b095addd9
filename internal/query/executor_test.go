package query_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gardening-api/internal/domain"
	"github.com/gardening-api/internal/query"
	"github.com/gardening-api/internal/schema"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func ptr[T any](v T) *T {
	return &v
}

func date(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&domain.Office{},
		&domain.Employee{},
		&domain.ProductLine{},
		&domain.Customer{},
		&domain.Order{},
		&domain.Product{},
		&domain.OrderDetail{},
		&domain.Payment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	seed := []any{
		&domain.Office{OfficeCode: "BOS", City: "Boston", Country: "EEUU", PostalCode: "02108", Phone: "+1 215 837 0825", AddressLine1: "1550 Court Place"},
		&domain.Office{OfficeCode: "MAD", City: "Madrid", Country: "España", PostalCode: "28032", Phone: "+34 91 7514487", AddressLine1: "Bulevar Indalecio Prieto, 32"},
		&domain.Office{OfficeCode: "PAR", City: "Paris", Country: "Francia", PostalCode: "75017", Phone: "+33 14 723 4404", AddressLine1: "29 Rue Jouffroy d'abbans"},

		&domain.Employee{EmployeeNumber: 1, FirstName: "Marcos", LastName1: "Magaña", Extension: "3897", Email: "marcos@jardineria.es", OfficeCode: "MAD", JobTitle: ptr("Director General")},
		&domain.Employee{EmployeeNumber: 11, FirstName: "Felipe", LastName1: "Rosas", Extension: "2838", Email: "frosas@jardineria.es", OfficeCode: "MAD", ManagerNumber: ptr(1), JobTitle: ptr("Representante Ventas")},
		&domain.Employee{EmployeeNumber: 30, FirstName: "Kevin", LastName1: "Fallmer", Extension: "3101", Email: "kfalmer@jardineria.es", OfficeCode: "PAR", ManagerNumber: ptr(1), JobTitle: ptr("Representante Ventas")},
		&domain.Employee{EmployeeNumber: 40, FirstName: "Hilary", LastName1: "Washington", Extension: "7684", Email: "hwashington@jardineria.es", OfficeCode: "BOS", ManagerNumber: ptr(1), JobTitle: ptr("Director Oficina")},

		&domain.ProductLine{ProductLineName: "Frutales"},
		&domain.ProductLine{ProductLineName: "Herramientas"},

		&domain.Product{ProductCode: "FR-1", Name: "Naranjo", ProductLineName: "Frutales", StockQuantity: 400, SalePrice: 6},
		&domain.Product{ProductCode: "AR-001", Name: "Sierra de Poda", ProductLineName: "Herramientas", StockQuantity: 15, SalePrice: 14},

		&domain.Customer{CustomerNumber: 1, CustomerName: "Beragua", Phone: "654987321", Fax: "916549872", AddressLine1: "C/pintor segundo", City: "Madrid", Country: ptr("España"), SalesRepNumber: ptr(11), CreditLimit: ptr(20000.0)},
		&domain.Customer{CustomerNumber: 2, CustomerName: "Flores Marivi", Phone: "666555444", Fax: "685249700", AddressLine1: "C/Leganes 24", City: "Fuenlabrada", Country: ptr("España"), SalesRepNumber: ptr(11), CreditLimit: ptr(1500.0)},
		&domain.Customer{CustomerNumber: 3, CustomerName: "Mendoza Seeds", Phone: "3125268766", Fax: "3125268767", AddressLine1: "Av. del Libertador 23", City: "Mendoza", Country: ptr("Argentina")},
		&domain.Customer{CustomerNumber: 4, CustomerName: "Madrileña de Riegos", Phone: "916493867", Fax: "916493868", AddressLine1: "C/Virgen de la Roca", City: "Madrid", Country: ptr("España"), SalesRepNumber: ptr(30), CreditLimit: ptr(24500.0)},

		&domain.Order{OrderNumber: 101, OrderDate: date("2009-01-17"), ExpectedDate: date("2009-01-19"), Status: "Entregado", CustomerNumber: 1},
		&domain.Order{OrderNumber: 102, OrderDate: date("2009-02-10"), ExpectedDate: date("2009-02-15"), Status: "Pendiente", CustomerNumber: 2},
		&domain.Order{OrderNumber: 103, OrderDate: date("2009-03-05"), ExpectedDate: date("2009-03-20"), Status: "Pendiente", CustomerNumber: 4},

		&domain.OrderDetail{OrderNumber: 101, LineNumber: 1, ProductCode: "FR-1", Quantity: 30, UnitPrice: 6},
		&domain.OrderDetail{OrderNumber: 102, LineNumber: 1, ProductCode: "AR-001", Quantity: 2, UnitPrice: 14},
		&domain.OrderDetail{OrderNumber: 103, LineNumber: 1, ProductCode: "AR-001", Quantity: 4, UnitPrice: 14},

		&domain.Payment{CustomerNumber: 1, TransactionID: "t-1", PaymentMethod: "PayPal", PaymentDate: date("2009-01-19"), Total: 2000},
	}
	for _, record := range seed {
		if err := db.Create(record).Error; err != nil {
			t.Fatalf("failed to seed %T: %v", record, err)
		}
	}

	return db
}

type engine struct {
	db       *gorm.DB
	catalog  *query.Catalog
	executor *query.Executor
}

func setupEngine(t *testing.T) *engine {
	t.Helper()

	s := schema.Default()
	catalog, err := query.NewCatalog(s)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	db := setupDB(t)
	return &engine{
		db:       db,
		catalog:  catalog,
		executor: query.NewExecutor(db, s),
	}
}

func (e *engine) run(t *testing.T, name string, params map[string]any) []query.Row {
	t.Helper()

	entry, err := e.catalog.Get(name)
	if err != nil {
		t.Fatalf("Get(%q): %v", name, err)
	}
	bound, err := e.catalog.Bind(entry, params)
	if err != nil {
		t.Fatalf("Bind(%q): %v", name, err)
	}
	rows, err := e.executor.Execute(context.Background(), entry, bound)
	if err != nil {
		t.Fatalf("Execute(%q): %v", name, err)
	}
	return rows
}

func customerNumbers(rows []query.Row) []int64 {
	numbers := make([]int64, len(rows))
	for i, row := range rows {
		numbers[i] = row["customer_number"].(int64)
	}
	return numbers
}

func equalInt64(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestOfficeCodeAndCity(t *testing.T) {
	e := setupEngine(t)

	rows := e.run(t, "office-code-and-city", nil)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	want := [][2]string{{"BOS", "Boston"}, {"MAD", "Madrid"}, {"PAR", "Paris"}}
	for i, row := range rows {
		if row["office_code"] != want[i][0] || row["city"] != want[i][1] {
			t.Errorf("row %d: expected %v, got %v", i, want[i], row)
		}
	}
}

func TestOfficesInSpain(t *testing.T) {
	e := setupEngine(t)

	rows := e.run(t, "offices-in-country", map[string]any{"country": "España"})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0]["city"] != "Madrid" || rows[0]["phone"] != "+34 91 7514487" {
		t.Errorf("unexpected row: %v", rows[0])
	}
}

func TestOfficeAddressesWithCustomersInCity(t *testing.T) {
	e := setupEngine(t)

	// Клиент из Фуэнлабрады закреплён за сотрудником мадридского офиса
	rows := e.run(t, "office-addresses-with-customers-in-city", map[string]any{"city": "Fuenlabrada"})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0]["address_line1"] != "Bulevar Indalecio Prieto, 32" {
		t.Errorf("unexpected address: %v", rows[0])
	}
}

func TestOfficesWithoutProductLineSales(t *testing.T) {
	e := setupEngine(t)

	// Frutales продавал только представитель 11 из офиса MAD
	rows := e.run(t, "offices-without-product-line-sales", map[string]any{"product_line": "Frutales"})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["office_code"] != "BOS" || rows[1]["office_code"] != "PAR" {
		t.Errorf("unexpected offices: %v", rows)
	}
}

// Заказ гаммы от клиента без представителя не привязан ни к одному
// сотруднику, поэтому набор офисов не меняется
func TestOfficesWithoutProductLineSalesIgnoresUnrepresentedCustomers(t *testing.T) {
	e := setupEngine(t)

	extra := []any{
		&domain.Customer{CustomerNumber: 5, CustomerName: "Jardin Libre", Phone: "911234567", Fax: "911234568", AddressLine1: "C/Estrecha 2", City: "Toledo", Country: ptr("España")},
		&domain.Order{OrderNumber: 104, OrderDate: date("2009-04-01"), ExpectedDate: date("2009-04-10"), Status: "Pendiente", CustomerNumber: 5},
		&domain.OrderDetail{OrderNumber: 104, LineNumber: 1, ProductCode: "FR-1", Quantity: 10, UnitPrice: 6},
	}
	for _, record := range extra {
		if err := e.db.Create(record).Error; err != nil {
			t.Fatalf("failed to create %T: %v", record, err)
		}
	}

	rows := e.run(t, "offices-without-product-line-sales", map[string]any{"product_line": "Frutales"})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["office_code"] != "BOS" || rows[1]["office_code"] != "PAR" {
		t.Errorf("unexpected offices: %v", rows)
	}
}

func TestCustomersInCountry(t *testing.T) {
	e := setupEngine(t)

	rows := e.run(t, "customers-in-country", map[string]any{"country": "España"})
	if got, want := customerNumbers(rows), []int64{1, 2, 4}; !equalInt64(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCustomersInCityWithReps(t *testing.T) {
	e := setupEngine(t)

	// Набор представителей по умолчанию {11, 30}
	rows := e.run(t, "customers-in-city-with-reps", map[string]any{"city": "Madrid"})
	if got, want := customerNumbers(rows), []int64{1, 4}; !equalInt64(got, want) {
		t.Errorf("default reps: expected %v, got %v", want, got)
	}

	rows = e.run(t, "customers-in-city-with-reps", map[string]any{"city": "Madrid", "reps": []int{30}})
	if got, want := customerNumbers(rows), []int64{4}; !equalInt64(got, want) {
		t.Errorf("reps=[30]: expected %v, got %v", want, got)
	}
}

func TestPaymentAndOrderReports(t *testing.T) {
	e := setupEngine(t)

	cases := []struct {
		name string
		want []int64
	}{
		{"customers-with-payments", []int64{1}},
		{"customers-without-payments", []int64{2, 3, 4}},
		{"customers-without-orders", []int64{3}},
		{"customers-without-orders-and-payments", []int64{3}},
		{"customers-with-orders-without-payments", []int64{2, 4}},
	}

	for _, tc := range cases {
		rows := e.run(t, tc.name, nil)
		if got := customerNumbers(rows); !equalInt64(got, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestAntiJoinInvariant(t *testing.T) {
	e := setupEngine(t)

	without := customerNumbers(e.run(t, "customers-without-orders", nil))
	total := e.run(t, "customer-count", nil)[0]["customers"].(int64)

	// Клиенты без заказов и с заказами не пересекаются, вместе дают всех
	withOrders := make(map[int64]bool)
	for _, n := range customerNumbers(e.run(t, "customers-with-orders-without-payments", nil)) {
		withOrders[n] = true
	}
	for _, n := range customerNumbers(e.run(t, "customers-with-payments", nil)) {
		withOrders[n] = true
	}
	for _, n := range without {
		if withOrders[n] {
			t.Errorf("customer %d is in both anti-join and semi-join sets", n)
		}
	}
	if int64(len(without)+len(withOrders)) != total {
		t.Errorf("union of order sets has %d customers, total is %d", len(without)+len(withOrders), total)
	}
}

func TestCountReports(t *testing.T) {
	e := setupEngine(t)

	total := e.run(t, "customer-count", nil)[0]["customers"].(int64)
	if total != 4 {
		t.Errorf("expected 4 customers, got %d", total)
	}

	byCountry := e.run(t, "customer-count-by-country", nil)
	var sum int64
	for _, row := range byCountry {
		sum += row["customers"].(int64)
	}
	if sum != total {
		t.Errorf("count-by-country sums to %d, total is %d", sum, total)
	}
	if byCountry[0]["country"] != "Argentina" || byCountry[0]["customers"].(int64) != 1 {
		t.Errorf("unexpected first group: %v", byCountry[0])
	}

	madrid := e.run(t, "customer-count-in-city", map[string]any{"city": "Madrid"})
	if madrid[0]["customers"].(int64) != 2 {
		t.Errorf("expected 2 customers in Madrid, got %v", madrid[0])
	}

	prefixed := e.run(t, "customer-count-by-city-prefix", map[string]any{"prefix": "M"})
	if len(prefixed) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(prefixed))
	}
	if prefixed[0]["city"] != "Madrid" || prefixed[0]["customers"].(int64) != 2 {
		t.Errorf("unexpected group: %v", prefixed[0])
	}
	if prefixed[1]["city"] != "Mendoza" || prefixed[1]["customers"].(int64) != 1 {
		t.Errorf("unexpected group: %v", prefixed[1])
	}

	noRep := e.run(t, "customer-count-without-sales-rep", nil)
	if noRep[0]["customers"].(int64) != 1 {
		t.Errorf("expected 1 customer without sales rep, got %v", noRep[0])
	}
}

func TestCustomersWithRepAndOfficeCity(t *testing.T) {
	e := setupEngine(t)

	rows := e.run(t, "customers-with-rep-and-office-city", nil)

	// Внутреннее соединение: клиент 3 без представителя отброшен
	want := []query.Row{
		{"customer_name": "Beragua", "rep_first_name": "Felipe", "rep_last_name": "Rosas", "office_city": "Madrid"},
		{"customer_name": "Flores Marivi", "rep_first_name": "Felipe", "rep_last_name": "Rosas", "office_city": "Madrid"},
		{"customer_name": "Madrileña de Riegos", "rep_first_name": "Kevin", "rep_last_name": "Fallmer", "office_city": "Paris"},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i, row := range rows {
		for key, value := range want[i] {
			if row[key] != value {
				t.Errorf("row %d: expected %s=%v, got %v", i, key, value, row[key])
			}
		}
	}
}

func TestCustomersWithSalesRepresentatives(t *testing.T) {
	e := setupEngine(t)

	rows := e.run(t, "customers-with-sales-representatives", nil)

	// Левое соединение: клиент 3 без представителя остаётся в результате
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0]["customer_name"] != "Beragua" || rows[0]["rep_first_name"] != "Felipe" {
		t.Errorf("unexpected first row: %v", rows[0])
	}
	unrepresented := rows[3]
	if unrepresented["customer_name"] != "Mendoza Seeds" {
		t.Fatalf("expected Mendoza Seeds last, got %v", unrepresented)
	}
	for _, key := range []string{"rep_first_name", "rep_last_name", "office_city"} {
		if unrepresented[key] != nil {
			t.Errorf("expected nil %s for unrepresented customer, got %v", key, unrepresented[key])
		}
	}
}

func TestCustomersWithoutPaymentsWithRepCity(t *testing.T) {
	e := setupEngine(t)

	rows := e.run(t, "customers-without-payments-with-rep-city", nil)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["customer_name"] != "Flores Marivi" || rows[1]["customer_name"] != "Madrileña de Riegos" {
		t.Errorf("unexpected rows: %v", rows)
	}
}

func TestNullsAreProjectedExplicitly(t *testing.T) {
	e := setupEngine(t)

	rows := e.run(t, "customers-in-country", map[string]any{"country": "Argentina"})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0]["sales_rep_number"] != nil {
		t.Errorf("expected nil sales_rep_number, got %v", rows[0]["sales_rep_number"])
	}
	if rows[0]["credit_limit"] != nil {
		t.Errorf("expected nil credit_limit, got %v", rows[0]["credit_limit"])
	}
}

func TestIdempotence(t *testing.T) {
	e := setupEngine(t)

	first, err := json.Marshal(e.run(t, "customer-count-by-country", nil))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	second, err := json.Marshal(e.run(t, "customer-count-by-country", nil))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("repeated execution differs:\n%s\n%s", first, second)
	}
}

func TestCancelledContext(t *testing.T) {
	e := setupEngine(t)

	entry, err := e.catalog.Get("customer-count")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows, err := e.executor.Execute(ctx, entry, nil)
	if !errors.Is(err, domain.ErrCancelled) {
		t.Errorf("expected ErrCancelled, got %v", err)
	}
	if rows != nil {
		t.Errorf("expected no rows, got %v", rows)
	}
}

func TestExpiredTimeout(t *testing.T) {
	e := setupEngine(t)

	entry, err := e.catalog.Get("customer-count")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), -time.Second)
	defer cancel()

	if _, err := e.executor.Execute(ctx, entry, nil); !errors.Is(err, domain.ErrCancelled) {
		t.Errorf("expected ErrCancelled, got %v", err)
	}
}

// Ошибки каталога не должны доходить до хранилища: исполнитель с nil-БД
// упал бы при любом обращении
func TestCatalogErrorsNeverReachStore(t *testing.T) {
	s := schema.Default()
	catalog, err := query.NewCatalog(s)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}

	if _, err := catalog.Get("no-such-report"); !errors.Is(err, domain.ErrQueryNotFound) {
		t.Errorf("expected ErrQueryNotFound, got %v", err)
	}

	entry, err := catalog.Get("offices-in-country")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, err := catalog.Bind(entry, nil); !errors.Is(err, domain.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

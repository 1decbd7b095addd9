package query

// Формы результата, общие для нескольких отчётов
var customerColumns = []Column{
	{Name: "customer_number", Type: ColInt},
	{Name: "customer_name", Type: ColString},
	{Name: "city", Type: ColString},
	{Name: "country", Type: ColNullString},
	{Name: "sales_rep_number", Type: ColNullInt},
	{Name: "credit_limit", Type: ColNullFloat},
}

var customerSelect = []string{
	"cliente.codigo_cliente",
	"cliente.nombre_cliente",
	"cliente.ciudad",
	"cliente.pais",
	"cliente.codigo_empleado_rep_ventas",
	"cliente.limite_credito",
}

var officeColumns = []Column{
	{Name: "office_code", Type: ColString},
	{Name: "city", Type: ColString},
	{Name: "country", Type: ColString},
	{Name: "phone", Type: ColString},
	{Name: "address_line1", Type: ColString},
}

var officeSelect = []string{
	"oficina.codigo_oficina",
	"oficina.ciudad",
	"oficina.pais",
	"oficina.telefono",
	"oficina.linea_direccion1",
}

// Коррелированные подзапросы наличия заказов и платежей у клиента
func customerHasOrders() *Query {
	return &Query{
		Select: []string{"1"},
		From:   "Order",
		Where: []Condition{
			{Column: "pedido.codigo_cliente", Op: OpEqColumn, Ref: "cliente.codigo_cliente"},
		},
	}
}

func customerHasPayments() *Query {
	return &Query{
		Select: []string{"1"},
		From:   "Payment",
		Where: []Condition{
			{Column: "pago.codigo_cliente", Op: OpEqColumn, Ref: "cliente.codigo_cliente"},
		},
	}
}

// reportEntries возвращает полный набор отчётов каталога
func reportEntries() []Entry {
	return []Entry{
		{
			Name: "office-code-and-city",
			Query: Query{
				Select:  []string{"oficina.codigo_oficina", "oficina.ciudad"},
				From:    "Office",
				OrderBy: []string{"oficina.codigo_oficina"},
			},
			Columns: []Column{
				{Name: "office_code", Type: ColString},
				{Name: "city", Type: ColString},
			},
		},
		{
			Name: "offices-in-country",
			Params: []Param{
				{Name: "country", Type: ParamString, Required: true, Constraint: "min=1"},
			},
			Query: Query{
				Select: []string{"oficina.ciudad", "oficina.telefono"},
				From:   "Office",
				Where: []Condition{
					{Column: "oficina.pais", Op: OpEq, Param: "country"},
				},
				OrderBy: []string{"oficina.ciudad"},
			},
			Columns: []Column{
				{Name: "city", Type: ColString},
				{Name: "phone", Type: ColString},
			},
		},
		{
			Name: "office-addresses-with-customers-in-city",
			Params: []Param{
				{Name: "city", Type: ParamString, Required: true, Constraint: "min=1"},
			},
			Query: Query{
				Distinct: true,
				Select:   []string{"oficina.linea_direccion1"},
				From:     "Office",
				Joins: []Join{
					{From: "Office", To: "Employee"},
					{From: "Employee", To: "Customer"},
				},
				Where: []Condition{
					{Column: "cliente.ciudad", Op: OpEq, Param: "city"},
				},
				OrderBy: []string{"oficina.linea_direccion1"},
			},
			Columns: []Column{
				{Name: "address_line1", Type: ColString},
			},
		},
		{
			// Офис подходит, только если ни один его сотрудник не числится
			// представителем клиента, заказавшего товар заданной гаммы —
			// четыре вложенных подзапроса от строк заказов до офисов
			Name: "offices-without-product-line-sales",
			Params: []Param{
				{Name: "product_line", Type: ParamString, Required: true, Constraint: "min=1"},
			},
			Query: Query{
				Select: officeSelect,
				From:   "Office",
				Where: []Condition{
					{Column: "oficina.codigo_oficina", Op: OpNotIn, Sub: &Query{
						Select: []string{"empleado.codigo_oficina"},
						From:   "Employee",
						Where: []Condition{
							{Column: "empleado.codigo_empleado", Op: OpIn, Sub: &Query{
								Select: []string{"cliente.codigo_empleado_rep_ventas"},
								From:   "Customer",
								Where: []Condition{
									{Column: "cliente.codigo_cliente", Op: OpIn, Sub: &Query{
										Select: []string{"pedido.codigo_cliente"},
										From:   "OrderDetail",
										Joins: []Join{
											{From: "OrderDetail", To: "Order"},
											{From: "OrderDetail", To: "Product"},
											{From: "Product", To: "ProductLine"},
										},
										Where: []Condition{
											{Column: "gama_producto.gama", Op: OpEq, Param: "product_line"},
										},
									}},
								},
							}},
						},
					}},
				},
				OrderBy: []string{"oficina.codigo_oficina"},
			},
			Columns: officeColumns,
		},
		{
			Name: "customers-in-country",
			Params: []Param{
				{Name: "country", Type: ParamString, Required: true, Constraint: "min=1"},
			},
			Query: Query{
				Select: customerSelect,
				From:   "Customer",
				Where: []Condition{
					{Column: "cliente.pais", Op: OpEq, Param: "country"},
				},
				OrderBy: []string{"cliente.codigo_cliente"},
			},
			Columns: customerColumns,
		},
		{
			Name: "customers-in-city-with-reps",
			Params: []Param{
				{Name: "city", Type: ParamString, Required: true, Constraint: "min=1"},
				{Name: "reps", Type: ParamIntList, Default: []int{11, 30}, Constraint: "min=1"},
			},
			Query: Query{
				Select: customerSelect,
				From:   "Customer",
				Where: []Condition{
					{Column: "cliente.ciudad", Op: OpEq, Param: "city"},
					{Column: "cliente.codigo_empleado_rep_ventas", Op: OpIn, Param: "reps"},
				},
				OrderBy: []string{"cliente.codigo_cliente"},
			},
			Columns: customerColumns,
		},
		{
			Name: "customers-with-payments",
			Query: Query{
				Select: customerSelect,
				From:   "Customer",
				Where: []Condition{
					{Op: OpExists, Sub: customerHasPayments()},
				},
				OrderBy: []string{"cliente.codigo_cliente"},
			},
			Columns: customerColumns,
		},
		{
			Name: "customers-without-payments",
			Query: Query{
				Select: customerSelect,
				From:   "Customer",
				Where: []Condition{
					{Op: OpNotExists, Sub: customerHasPayments()},
				},
				OrderBy: []string{"cliente.codigo_cliente"},
			},
			Columns: customerColumns,
		},
		{
			Name: "customers-without-orders",
			Query: Query{
				Select: customerSelect,
				From:   "Customer",
				Where: []Condition{
					{Op: OpNotExists, Sub: customerHasOrders()},
				},
				OrderBy: []string{"cliente.codigo_cliente"},
			},
			Columns: customerColumns,
		},
		{
			Name: "customers-without-orders-and-payments",
			Query: Query{
				Select: customerSelect,
				From:   "Customer",
				Where: []Condition{
					{Op: OpNotExists, Sub: customerHasOrders()},
					{Op: OpNotExists, Sub: customerHasPayments()},
				},
				OrderBy: []string{"cliente.codigo_cliente"},
			},
			Columns: customerColumns,
		},
		{
			// Существование заказов и отсутствие платежей на уровне клиента,
			// без сверки оплат по отдельным заказам
			Name: "customers-with-orders-without-payments",
			Query: Query{
				Select: customerSelect,
				From:   "Customer",
				Where: []Condition{
					{Op: OpExists, Sub: customerHasOrders()},
					{Op: OpNotExists, Sub: customerHasPayments()},
				},
				OrderBy: []string{"cliente.codigo_cliente"},
			},
			Columns: customerColumns,
		},
		{
			Name: "customer-count-by-country",
			Query: Query{
				Select:  []string{"cliente.pais", "COUNT(*)"},
				From:    "Customer",
				GroupBy: []string{"cliente.pais"},
				OrderBy: []string{"cliente.pais"},
			},
			Columns: []Column{
				{Name: "country", Type: ColNullString},
				{Name: "customers", Type: ColInt},
			},
		},
		{
			Name: "customer-count",
			Query: Query{
				Select: []string{"COUNT(*)"},
				From:   "Customer",
			},
			Columns: []Column{
				{Name: "customers", Type: ColInt},
			},
		},
		{
			Name: "customer-count-in-city",
			Params: []Param{
				{Name: "city", Type: ParamString, Required: true, Constraint: "min=1"},
			},
			Query: Query{
				Select: []string{"COUNT(*)"},
				From:   "Customer",
				Where: []Condition{
					{Column: "cliente.ciudad", Op: OpEq, Param: "city"},
				},
			},
			Columns: []Column{
				{Name: "customers", Type: ColInt},
			},
		},
		{
			Name: "customer-count-by-city-prefix",
			Params: []Param{
				{Name: "prefix", Type: ParamString, Required: true, Constraint: "min=1"},
			},
			Query: Query{
				Select: []string{"cliente.ciudad", "COUNT(*)"},
				From:   "Customer",
				Where: []Condition{
					{Column: "cliente.ciudad", Op: OpHasPrefix, Param: "prefix"},
				},
				GroupBy: []string{"cliente.ciudad"},
				OrderBy: []string{"cliente.ciudad"},
			},
			Columns: []Column{
				{Name: "city", Type: ColString},
				{Name: "customers", Type: ColInt},
			},
		},
		{
			Name: "customer-count-without-sales-rep",
			Query: Query{
				Select: []string{"COUNT(*)"},
				From:   "Customer",
				Where: []Condition{
					{Column: "cliente.codigo_empleado_rep_ventas", Op: OpIsNull},
				},
			},
			Columns: []Column{
				{Name: "customers", Type: ColInt},
			},
		},
		{
			// Внутреннее соединение: клиенты без представителя не попадают
			// в результат
			Name: "customers-with-rep-and-office-city",
			Query: Query{
				Select: []string{
					"cliente.nombre_cliente",
					"empleado.nombre",
					"empleado.apellido1",
					"oficina.ciudad",
				},
				From: "Customer",
				Joins: []Join{
					{From: "Customer", To: "Employee"},
					{From: "Employee", To: "Office"},
				},
				OrderBy: []string{"cliente.nombre_cliente"},
			},
			Columns: []Column{
				{Name: "customer_name", Type: ColString},
				{Name: "rep_first_name", Type: ColString},
				{Name: "rep_last_name", Type: ColString},
				{Name: "office_city", Type: ColString},
			},
		},
		{
			// Левое соединение: клиенты без представителя остаются в
			// результате с пустыми полями представителя
			Name: "customers-with-sales-representatives",
			Query: Query{
				Select: []string{
					"cliente.nombre_cliente",
					"empleado.nombre",
					"empleado.apellido1",
					"oficina.ciudad",
				},
				From: "Customer",
				Joins: []Join{
					{From: "Customer", To: "Employee", Left: true},
					{From: "Employee", To: "Office", Left: true},
				},
				OrderBy: []string{"cliente.nombre_cliente"},
			},
			Columns: []Column{
				{Name: "customer_name", Type: ColString},
				{Name: "rep_first_name", Type: ColNullString},
				{Name: "rep_last_name", Type: ColNullString},
				{Name: "office_city", Type: ColNullString},
			},
		},
		{
			Name: "customers-without-payments-with-rep-city",
			Query: Query{
				Select: []string{
					"cliente.nombre_cliente",
					"empleado.nombre",
					"empleado.apellido1",
					"oficina.ciudad",
				},
				From: "Customer",
				Joins: []Join{
					{From: "Customer", To: "Employee"},
					{From: "Employee", To: "Office"},
				},
				Where: []Condition{
					{Op: OpNotExists, Sub: customerHasPayments()},
				},
				OrderBy: []string{"cliente.nombre_cliente"},
			},
			Columns: []Column{
				{Name: "customer_name", Type: ColString},
				{Name: "rep_first_name", Type: ColString},
				{Name: "rep_last_name", Type: ColString},
				{Name: "office_city", Type: ColString},
			},
		},
	}
}

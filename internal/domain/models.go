package domain

import (
	"time"
)

// Office представляет офис компании
type Office struct {
	OfficeCode   string  `json:"office_code" gorm:"column:codigo_oficina;primaryKey;type:varchar(10)"`
	City         string  `json:"city" gorm:"column:ciudad;type:varchar(30);not null"`
	Country      string  `json:"country" gorm:"column:pais;type:varchar(50);not null"`
	Region       *string `json:"region" gorm:"column:region;type:varchar(50)"`
	PostalCode   string  `json:"postal_code" gorm:"column:codigo_postal;type:varchar(10);not null"`
	Phone        string  `json:"phone" gorm:"column:telefono;type:varchar(20);not null"`
	AddressLine1 string  `json:"address_line1" gorm:"column:linea_direccion1;type:varchar(50);not null"`
	AddressLine2 *string `json:"address_line2" gorm:"column:linea_direccion2;type:varchar(50)"`

	Employees []Employee `json:"employees,omitempty" gorm:"foreignKey:OfficeCode"`
}

// TableName задаёт имя таблицы для GORM
func (Office) TableName() string {
	return "oficina"
}

// Employee представляет сотрудника компании. Ссылка на руководителя
// хранится как nullable идентификатор, а не как указатель на сущность,
// чтобы дерево подчинённости оставалось ацикличным и сериализуемым.
type Employee struct {
	EmployeeNumber int     `json:"employee_number" gorm:"column:codigo_empleado;primaryKey"`
	FirstName      string  `json:"first_name" gorm:"column:nombre;type:varchar(50);not null"`
	LastName1      string  `json:"last_name1" gorm:"column:apellido1;type:varchar(50);not null"`
	LastName2      *string `json:"last_name2" gorm:"column:apellido2;type:varchar(50)"`
	Extension      string  `json:"extension" gorm:"column:extension;type:varchar(10);not null"`
	Email          string  `json:"email" gorm:"column:email;type:varchar(100);not null"`
	OfficeCode     string  `json:"office_code" gorm:"column:codigo_oficina;type:varchar(10);not null;index"`
	ManagerNumber  *int    `json:"manager_number" gorm:"column:codigo_jefe;index"`
	JobTitle       *string `json:"job_title" gorm:"column:puesto;type:varchar(50)"`

	Office    *Office    `json:"-" gorm:"foreignKey:OfficeCode;references:OfficeCode"`
	Customers []Customer `json:"-" gorm:"foreignKey:SalesRepNumber"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "empleado"
}

// Customer представляет клиента
type Customer struct {
	CustomerNumber   int      `json:"customer_number" gorm:"column:codigo_cliente;primaryKey"`
	CustomerName     string   `json:"customer_name" gorm:"column:nombre_cliente;type:varchar(50);not null"`
	ContactFirstName *string  `json:"contact_first_name" gorm:"column:nombre_contacto;type:varchar(30)"`
	ContactLastName  *string  `json:"contact_last_name" gorm:"column:apellido_contacto;type:varchar(30)"`
	Phone            string   `json:"phone" gorm:"column:telefono;type:varchar(15);not null"`
	Fax              string   `json:"fax" gorm:"column:fax;type:varchar(15);not null"`
	AddressLine1     string   `json:"address_line1" gorm:"column:linea_direccion1;type:varchar(50);not null"`
	AddressLine2     *string  `json:"address_line2" gorm:"column:linea_direccion2;type:varchar(50)"`
	City             string   `json:"city" gorm:"column:ciudad;type:varchar(50);not null"`
	Region           *string  `json:"region" gorm:"column:region;type:varchar(50)"`
	Country          *string  `json:"country" gorm:"column:pais;type:varchar(50)"`
	PostalCode       *string  `json:"postal_code" gorm:"column:codigo_postal;type:varchar(10)"`
	SalesRepNumber   *int     `json:"sales_rep_number" gorm:"column:codigo_empleado_rep_ventas;index"`
	CreditLimit      *float64 `json:"credit_limit" gorm:"column:limite_credito;type:numeric(15,2)"`

	SalesRep *Employee `json:"-" gorm:"foreignKey:SalesRepNumber;references:EmployeeNumber"`
	Orders   []Order   `json:"-" gorm:"foreignKey:CustomerNumber"`
	Payments []Payment `json:"-" gorm:"foreignKey:CustomerNumber"`
}

// TableName задаёт имя таблицы для GORM
func (Customer) TableName() string {
	return "cliente"
}

// Order представляет заказ клиента
type Order struct {
	OrderNumber    int        `json:"order_number" gorm:"column:codigo_pedido;primaryKey"`
	OrderDate      time.Time  `json:"order_date" gorm:"column:fecha_pedido;type:date;not null"`
	ExpectedDate   time.Time  `json:"expected_date" gorm:"column:fecha_esperada;type:date;not null"`
	DeliveredDate  *time.Time `json:"delivered_date" gorm:"column:fecha_entrega;type:date"`
	Status         string     `json:"status" gorm:"column:estado;type:varchar(15);not null"`
	Comments       *string    `json:"comments" gorm:"column:comentarios;type:text"`
	CustomerNumber int        `json:"customer_number" gorm:"column:codigo_cliente;not null;index"`

	Customer *Customer     `json:"-" gorm:"foreignKey:CustomerNumber;references:CustomerNumber"`
	Details  []OrderDetail `json:"-" gorm:"foreignKey:OrderNumber"`
}

// TableName задаёт имя таблицы для GORM
func (Order) TableName() string {
	return "pedido"
}

// OrderDetail представляет строку заказа, составной ключ: заказ + номер строки
type OrderDetail struct {
	OrderNumber int     `json:"order_number" gorm:"column:codigo_pedido;primaryKey;autoIncrement:false"`
	LineNumber  int     `json:"line_number" gorm:"column:numero_linea;primaryKey;autoIncrement:false"`
	ProductCode string  `json:"product_code" gorm:"column:codigo_producto;type:varchar(15);not null;index"`
	Quantity    int     `json:"quantity" gorm:"column:cantidad;not null"`
	UnitPrice   float64 `json:"unit_price" gorm:"column:precio_unidad;type:numeric(15,2);not null"`

	Order   *Order   `json:"-" gorm:"foreignKey:OrderNumber;references:OrderNumber"`
	Product *Product `json:"-" gorm:"foreignKey:ProductCode;references:ProductCode"`
}

// TableName задаёт имя таблицы для GORM
func (OrderDetail) TableName() string {
	return "detalle_pedido"
}

// Product представляет товар каталога
type Product struct {
	ProductCode     string  `json:"product_code" gorm:"column:codigo_producto;primaryKey;type:varchar(15)"`
	Name            string  `json:"name" gorm:"column:nombre;type:varchar(70);not null"`
	ProductLineName string  `json:"product_line" gorm:"column:gama;type:varchar(50);not null;index"`
	Supplier        *string `json:"supplier" gorm:"column:proveedor;type:varchar(50)"`
	Description     *string `json:"description" gorm:"column:descripcion;type:text"`
	StockQuantity   int     `json:"stock_quantity" gorm:"column:cantidad_en_stock;not null"`
	SalePrice       float64 `json:"sale_price" gorm:"column:precio_venta;type:numeric(15,2);not null"`

	ProductLine *ProductLine `json:"-" gorm:"foreignKey:ProductLineName;references:ProductLineName"`
}

// TableName задаёт имя таблицы для GORM
func (Product) TableName() string {
	return "producto"
}

// ProductLine представляет гамму товаров, например "Frutales"
type ProductLine struct {
	ProductLineName string  `json:"product_line" gorm:"column:gama;primaryKey;type:varchar(50)"`
	TextDescription *string `json:"description" gorm:"column:descripcion_texto;type:varchar(4000)"`

	Products []Product `json:"-" gorm:"foreignKey:ProductLineName"`
}

// TableName задаёт имя таблицы для GORM
func (ProductLine) TableName() string {
	return "gama_producto"
}

// Payment представляет платёж клиента, составной ключ: клиент + транзакция
type Payment struct {
	CustomerNumber int       `json:"customer_number" gorm:"column:codigo_cliente;primaryKey;autoIncrement:false"`
	TransactionID  string    `json:"transaction_id" gorm:"column:id_transaccion;primaryKey;type:varchar(50)"`
	PaymentMethod  string    `json:"payment_method" gorm:"column:forma_pago;type:varchar(40);not null"`
	PaymentDate    time.Time `json:"payment_date" gorm:"column:fecha_pago;type:date;not null"`
	Total          float64   `json:"total" gorm:"column:total;type:numeric(15,2);not null"`

	Customer *Customer `json:"-" gorm:"foreignKey:CustomerNumber;references:CustomerNumber"`
}

// TableName задаёт имя таблицы для GORM
func (Payment) TableName() string {
	return "pago"
}

package schema

import (
	"fmt"

	"github.com/gardening-api/internal/domain"
)

// Field описывает колонку сущности
type Field struct {
	Name     string
	Column   string
	Nullable bool
}

// Relationship описывает связь между двумя сущностями в виде условия
// соединения (колонка владельца = колонка зависимой стороны)
type Relationship struct {
	From       string
	To         string
	FromColumn string
	ToColumn   string
}

// Entity описывает сущность и её таблицу
type Entity struct {
	Name   string
	Table  string
	Fields []Field
}

// Schema хранит описание сущностей и связей предметной области.
// Каталог отчётов сверяется с ним при регистрации запросов.
type Schema struct {
	entities      map[string]Entity
	tables        map[string]Entity
	relationships map[string]Relationship
}

// New создаёт пустую схему
func New() *Schema {
	return &Schema{
		entities:      make(map[string]Entity),
		tables:        make(map[string]Entity),
		relationships: make(map[string]Relationship),
	}
}

// AddEntity регистрирует сущность
func (s *Schema) AddEntity(e Entity) {
	s.entities[e.Name] = e
	s.tables[e.Table] = e
}

// AddRelationship регистрирует связь между сущностями
func (s *Schema) AddRelationship(r Relationship) {
	s.relationships[relKey(r.From, r.To)] = r
}

// Entity возвращает описание сущности по имени
func (s *Schema) Entity(name string) (Entity, error) {
	e, ok := s.entities[name]
	if !ok {
		return Entity{}, fmt.Errorf("%w: %s", domain.ErrUnknownEntity, name)
	}
	return e, nil
}

// Relationship возвращает условие соединения двух сущностей.
// Направление не важно: связь ищется в обе стороны.
func (s *Schema) Relationship(from, to string) (Relationship, error) {
	if r, ok := s.relationships[relKey(from, to)]; ok {
		return r, nil
	}
	if r, ok := s.relationships[relKey(to, from)]; ok {
		return r, nil
	}
	return Relationship{}, fmt.Errorf("%w: %s -> %s", domain.ErrUnknownRelationship, from, to)
}

// Column возвращает описание колонки по имени таблицы и колонки
func (s *Schema) Column(table, column string) (Field, error) {
	e, ok := s.tables[table]
	if !ok {
		return Field{}, fmt.Errorf("%w: table %s", domain.ErrUnknownEntity, table)
	}
	for _, f := range e.Fields {
		if f.Column == column {
			return f, nil
		}
	}
	return Field{}, fmt.Errorf("%w: %s.%s", domain.ErrUnknownColumn, table, column)
}

func relKey(from, to string) string {
	return from + "->" + to
}

// Default возвращает схему базы садового центра: восемь сущностей и связи
// офис-сотрудник, сотрудник-руководитель, сотрудник-клиент, клиент-заказ,
// клиент-платёж, заказ-строка заказа, товар-строка заказа, гамма-товар.
func Default() *Schema {
	s := New()

	s.AddEntity(Entity{Name: "Office", Table: "oficina", Fields: []Field{
		{Name: "officeCode", Column: "codigo_oficina"},
		{Name: "city", Column: "ciudad"},
		{Name: "country", Column: "pais"},
		{Name: "region", Column: "region", Nullable: true},
		{Name: "postalCode", Column: "codigo_postal"},
		{Name: "phone", Column: "telefono"},
		{Name: "addressLine1", Column: "linea_direccion1"},
		{Name: "addressLine2", Column: "linea_direccion2", Nullable: true},
	}})

	s.AddEntity(Entity{Name: "Employee", Table: "empleado", Fields: []Field{
		{Name: "employeeNumber", Column: "codigo_empleado"},
		{Name: "firstName", Column: "nombre"},
		{Name: "lastName1", Column: "apellido1"},
		{Name: "lastName2", Column: "apellido2", Nullable: true},
		{Name: "extension", Column: "extension"},
		{Name: "email", Column: "email"},
		{Name: "officeCode", Column: "codigo_oficina"},
		{Name: "managerNumber", Column: "codigo_jefe", Nullable: true},
		{Name: "jobTitle", Column: "puesto", Nullable: true},
	}})

	s.AddEntity(Entity{Name: "Customer", Table: "cliente", Fields: []Field{
		{Name: "customerNumber", Column: "codigo_cliente"},
		{Name: "customerName", Column: "nombre_cliente"},
		{Name: "contactFirstName", Column: "nombre_contacto", Nullable: true},
		{Name: "contactLastName", Column: "apellido_contacto", Nullable: true},
		{Name: "phone", Column: "telefono"},
		{Name: "city", Column: "ciudad"},
		{Name: "region", Column: "region", Nullable: true},
		{Name: "country", Column: "pais", Nullable: true},
		{Name: "salesRepNumber", Column: "codigo_empleado_rep_ventas", Nullable: true},
		{Name: "creditLimit", Column: "limite_credito", Nullable: true},
	}})

	s.AddEntity(Entity{Name: "Order", Table: "pedido", Fields: []Field{
		{Name: "orderNumber", Column: "codigo_pedido"},
		{Name: "orderDate", Column: "fecha_pedido"},
		{Name: "expectedDate", Column: "fecha_esperada"},
		{Name: "deliveredDate", Column: "fecha_entrega", Nullable: true},
		{Name: "status", Column: "estado"},
		{Name: "customerNumber", Column: "codigo_cliente"},
	}})

	s.AddEntity(Entity{Name: "OrderDetail", Table: "detalle_pedido", Fields: []Field{
		{Name: "orderNumber", Column: "codigo_pedido"},
		{Name: "lineNumber", Column: "numero_linea"},
		{Name: "productCode", Column: "codigo_producto"},
		{Name: "quantity", Column: "cantidad"},
		{Name: "unitPrice", Column: "precio_unidad"},
	}})

	s.AddEntity(Entity{Name: "Product", Table: "producto", Fields: []Field{
		{Name: "productCode", Column: "codigo_producto"},
		{Name: "name", Column: "nombre"},
		{Name: "productLine", Column: "gama"},
		{Name: "stockQuantity", Column: "cantidad_en_stock"},
		{Name: "salePrice", Column: "precio_venta"},
	}})

	s.AddEntity(Entity{Name: "ProductLine", Table: "gama_producto", Fields: []Field{
		{Name: "productLine", Column: "gama"},
		{Name: "textDescription", Column: "descripcion_texto", Nullable: true},
	}})

	s.AddEntity(Entity{Name: "Payment", Table: "pago", Fields: []Field{
		{Name: "customerNumber", Column: "codigo_cliente"},
		{Name: "transactionID", Column: "id_transaccion"},
		{Name: "paymentMethod", Column: "forma_pago"},
		{Name: "paymentDate", Column: "fecha_pago"},
		{Name: "total", Column: "total"},
	}})

	s.AddRelationship(Relationship{From: "Office", To: "Employee", FromColumn: "codigo_oficina", ToColumn: "codigo_oficina"})
	s.AddRelationship(Relationship{From: "Employee", To: "Employee", FromColumn: "codigo_empleado", ToColumn: "codigo_jefe"})
	s.AddRelationship(Relationship{From: "Employee", To: "Customer", FromColumn: "codigo_empleado", ToColumn: "codigo_empleado_rep_ventas"})
	s.AddRelationship(Relationship{From: "Customer", To: "Order", FromColumn: "codigo_cliente", ToColumn: "codigo_cliente"})
	s.AddRelationship(Relationship{From: "Customer", To: "Payment", FromColumn: "codigo_cliente", ToColumn: "codigo_cliente"})
	s.AddRelationship(Relationship{From: "Order", To: "OrderDetail", FromColumn: "codigo_pedido", ToColumn: "codigo_pedido"})
	s.AddRelationship(Relationship{From: "Product", To: "OrderDetail", FromColumn: "codigo_producto", ToColumn: "codigo_producto"})
	s.AddRelationship(Relationship{From: "ProductLine", To: "Product", FromColumn: "gama", ToColumn: "gama"})

	return s
}

package dto

// OfficeResponse - ответ с данными офиса
type OfficeResponse struct {
	OfficeCode   string  `json:"office_code"`
	City         string  `json:"city"`
	Country      string  `json:"country"`
	Region       *string `json:"region,omitempty"`
	PostalCode   string  `json:"postal_code"`
	Phone        string  `json:"phone"`
	AddressLine1 string  `json:"address_line1"`
	AddressLine2 *string `json:"address_line2,omitempty"`
}

// CustomerResponse - ответ с данными клиента
type CustomerResponse struct {
	CustomerNumber int      `json:"customer_number"`
	CustomerName   string   `json:"customer_name"`
	Phone          string   `json:"phone"`
	City           string   `json:"city"`
	Country        *string  `json:"country"`
	SalesRepNumber *int     `json:"sales_rep_number"`
	CreditLimit    *float64 `json:"credit_limit"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	EmployeeNumber int     `json:"employee_number"`
	FirstName      string  `json:"first_name"`
	LastName1      string  `json:"last_name1"`
	LastName2      *string `json:"last_name2"`
	Email          string  `json:"email"`
	OfficeCode     string  `json:"office_code"`
	ManagerNumber  *int    `json:"manager_number"`
	JobTitle       *string `json:"job_title"`
}

// ManagerEntry - одна запись индекса подчинённости: сотрудник и его
// необязательный руководитель
type ManagerEntry struct {
	EmployeeNumber int  `json:"employee_number"`
	ManagerNumber  *int `json:"manager_number"`
}

// CustomerSalesRepResponse - имя клиента с именем представителя и городом
// офиса представителя
type CustomerSalesRepResponse struct {
	CustomerName string `json:"customer_name"`
	RepFirstName string `json:"rep_first_name"`
	RepLastName  string `json:"rep_last_name"`
	OfficeCity   string `json:"office_city"`
}

// CustomerSalesRepInfoResponse - клиент с данными представителя; у клиентов
// без закрепления поля представителя равны null
type CustomerSalesRepInfoResponse struct {
	CustomerName string  `json:"customer_name"`
	RepFirstName *string `json:"rep_first_name"`
	RepLastName  *string `json:"rep_last_name"`
	OfficeCity   *string `json:"office_city"`
}

// MadridRepsQuery - параметры запроса клиентов Мадрида по номерам представителей
type MadridRepsQuery struct {
	Reps []int `validate:"omitempty,min=1,dive,min=1"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

package proto

import "google.golang.org/protobuf/encoding/protowire"

type Employee struct {
	Id          int64
	Name        string
	Department  string
	Salary      float64
	DateOfBirth string
}

func (x *Employee) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Employee) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Employee) GetDepartment() string {
	if x != nil {
		return x.Department
	}
	return ""
}

func (x *Employee) GetSalary() float64 {
	if x != nil {
		return x.Salary
	}
	return 0
}

func (x *Employee) GetDateOfBirth() string {
	if x != nil {
		return x.DateOfBirth
	}
	return ""
}

func (x *Employee) appendWire(b []byte) []byte {
	b = appendVarintField(b, 1, uint64(x.Id))
	b = appendStringField(b, 2, x.Name)
	b = appendStringField(b, 3, x.Department)
	b = appendDoubleField(b, 4, x.Salary)
	b = appendStringField(b, 5, x.DateOfBirth)
	return b
}

func (x *Employee) unmarshalWire(b []byte) error {
	*x = Employee{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			return consumeInt64(b, &x.Id), nil
		case num == 2 && typ == protowire.BytesType:
			return consumeString(b, &x.Name), nil
		case num == 3 && typ == protowire.BytesType:
			return consumeString(b, &x.Department), nil
		case num == 4 && typ == protowire.Fixed64Type:
			return consumeDouble(b, &x.Salary), nil
		case num == 5 && typ == protowire.BytesType:
			return consumeString(b, &x.DateOfBirth), nil
		}
		return 0, nil
	})
}

type EmployeeStreamRequest struct {
	MaxCount  int32
	BatchSize int32
}

func (x *EmployeeStreamRequest) GetMaxCount() int32 {
	if x != nil {
		return x.MaxCount
	}
	return 0
}

func (x *EmployeeStreamRequest) GetBatchSize() int32 {
	if x != nil {
		return x.BatchSize
	}
	return 0
}

func (x *EmployeeStreamRequest) appendWire(b []byte) []byte {
	b = appendVarintField(b, 1, uint64(int64(x.MaxCount)))
	b = appendVarintField(b, 2, uint64(int64(x.BatchSize)))
	return b
}

func (x *EmployeeStreamRequest) unmarshalWire(b []byte) error {
	*x = EmployeeStreamRequest{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			return consumeInt32(b, &x.MaxCount), nil
		case num == 2 && typ == protowire.VarintType:
			return consumeInt32(b, &x.BatchSize), nil
		}
		return 0, nil
	})
}

type EmployeeBatch struct {
	Employees []*Employee
}

func (x *EmployeeBatch) GetEmployees() []*Employee {
	if x != nil {
		return x.Employees
	}
	return nil
}

func (x *EmployeeBatch) appendWire(b []byte) []byte {
	for _, e := range x.Employees {
		b = appendMessageField(b, 1, e)
	}
	return b
}

func (x *EmployeeBatch) unmarshalWire(b []byte) error {
	*x = EmployeeBatch{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			e := &Employee{}
			n, err := consumeMessage(b, e)
			if err == nil && n > 0 {
				x.Employees = append(x.Employees, e)
			}
			return n, err
		}
		return 0, nil
	})
}

type EmployeePageRequest struct {
	Page     int32
	PageSize int32
}

func (x *EmployeePageRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *EmployeePageRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *EmployeePageRequest) appendWire(b []byte) []byte {
	b = appendVarintField(b, 1, uint64(int64(x.Page)))
	b = appendVarintField(b, 2, uint64(int64(x.PageSize)))
	return b
}

func (x *EmployeePageRequest) unmarshalWire(b []byte) error {
	*x = EmployeePageRequest{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			return consumeInt32(b, &x.Page), nil
		case num == 2 && typ == protowire.VarintType:
			return consumeInt32(b, &x.PageSize), nil
		}
		return 0, nil
	})
}

type EmployeePage struct {
	Employees  []*Employee
	TotalCount int64
	Page       int32
	PageSize   int32
	TotalPages int32
}

func (x *EmployeePage) GetEmployees() []*Employee {
	if x != nil {
		return x.Employees
	}
	return nil
}

func (x *EmployeePage) GetTotalCount() int64 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

func (x *EmployeePage) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *EmployeePage) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *EmployeePage) GetTotalPages() int32 {
	if x != nil {
		return x.TotalPages
	}
	return 0
}

func (x *EmployeePage) appendWire(b []byte) []byte {
	for _, e := range x.Employees {
		b = appendMessageField(b, 1, e)
	}
	b = appendVarintField(b, 2, uint64(x.TotalCount))
	b = appendVarintField(b, 3, uint64(int64(x.Page)))
	b = appendVarintField(b, 4, uint64(int64(x.PageSize)))
	b = appendVarintField(b, 5, uint64(int64(x.TotalPages)))
	return b
}

func (x *EmployeePage) unmarshalWire(b []byte) error {
	*x = EmployeePage{}
	return unmarshalFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			e := &Employee{}
			n, err := consumeMessage(b, e)
			if err == nil && n > 0 {
				x.Employees = append(x.Employees, e)
			}
			return n, err
		case num == 2 && typ == protowire.VarintType:
			return consumeInt64(b, &x.TotalCount), nil
		case num == 3 && typ == protowire.VarintType:
			return consumeInt32(b, &x.Page), nil
		case num == 4 && typ == protowire.VarintType:
			return consumeInt32(b, &x.PageSize), nil
		case num == 5 && typ == protowire.VarintType:
			return consumeInt32(b, &x.TotalPages), nil
		}
		return 0, nil
	})
}

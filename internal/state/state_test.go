package state

import (
	"context"
	"testing"

	"mployee/internal/company"
	"mployee/internal/employee"
	"mployee/internal/notice"
	"mployee/internal/reimbursement"
	"mployee/internal/storage"

	"github.com/stretchr/testify/assert"
)

func TestStateLoadEmptyStore(t *testing.T) {
	store := storage.NewMemoryKV()
	st := New(store, "mployee")

	err := st.Load(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, st.Employees.Len())
	assert.Empty(t, st.Reimbursements.List())
	assert.Empty(t, st.Notices.List())
	assert.Equal(t, company.Settings{}, st.Settings.Current())
	assert.Equal(t, "EMP001", st.Employees.NextID())
}

func TestStateFlushAndReload(t *testing.T) {
	store := storage.NewMemoryKV()
	st := New(store, "mployee")

	err := st.Employees.Add(employee.Employee{
		ID:            "EMP001",
		Name:          "Asha Rao",
		Designation:   "Engineer",
		Status:        employee.StatusActive,
		MonthlySalary: 30000,
	})
	assert.NoError(t, err)

	_, err = st.Reimbursements.Add(reimbursement.Reimbursement{
		EmployeeID:  "EMP001",
		Amount:      1200,
		Description: "Travel",
	})
	assert.NoError(t, err)

	_, err = st.Notices.Add(notice.Notice{
		Title:   "Holiday",
		Content: "Office closed Friday",
	})
	assert.NoError(t, err)

	st.Settings.Replace(company.Settings{
		CompanyName:  "Acme Pvt Ltd",
		EmployerName: "R. Menon",
	})

	assert.NoError(t, st.Flush(context.Background()))

	reloaded := New(store, "mployee")
	assert.NoError(t, reloaded.Load(context.Background()))

	emp, found := reloaded.Employees.Find("EMP001")
	assert.True(t, found)
	assert.Equal(t, "Asha Rao", emp.Name)
	assert.Len(t, reloaded.Reimbursements.List(), 1)
	assert.Len(t, reloaded.Notices.List(), 1)
	assert.Equal(t, "Acme Pvt Ltd", reloaded.Settings.Current().CompanyName)
	assert.Equal(t, "EMP002", reloaded.Employees.NextID())
}

func TestStateFlushWritesAllDocumentsTogether(t *testing.T) {
	store := storage.NewMemoryKV()
	st := New(store, "app")

	assert.NoError(t, st.Flush(context.Background()))

	for _, key := range []string{"app:employees", "app:reimbursements", "app:notices", "app:settings"} {
		_, ok, err := store.Get(context.Background(), key)
		assert.NoError(t, err)
		assert.True(t, ok, "expected %s to be written", key)
	}
}

func TestDeletingEmployeeLeavesReimbursementDangling(t *testing.T) {
	store := storage.NewMemoryKV()
	st := New(store, "mployee")

	assert.NoError(t, st.Employees.Add(employee.Employee{ID: "EMP001", Name: "Asha Rao"}))
	rec, err := st.Reimbursements.Add(reimbursement.Reimbursement{
		EmployeeID:  "EMP001",
		Amount:      500,
		Description: "Meals",
	})
	assert.NoError(t, err)

	_, err = st.Employees.Delete("EMP001")
	assert.NoError(t, err)

	// The reimbursement survives with a dangling employee reference.
	got, found := st.Reimbursements.Find(rec.ID)
	assert.True(t, found)
	assert.Equal(t, "EMP001", got.EmployeeID)
	_, found = st.Employees.Find("EMP001")
	assert.False(t, found)
}

func TestStateLoadCorruptDocument(t *testing.T) {
	store := storage.NewMemoryKV()
	err := store.SetAll(context.Background(), map[string]string{
		"mployee:employees": "{not json",
	})
	assert.NoError(t, err)

	st := New(store, "mployee")
	assert.Error(t, st.Load(context.Background()))
}

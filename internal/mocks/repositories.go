// Package mocks provides testify mocks for the repository interfaces
// consumed by the service layer. They are shared by controller and
// middleware tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/collegehub/backend/internal/app/models"
	"github.com/collegehub/backend/internal/app/models/dto"
)

// UserRepository mocks the user repository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) GetByUserID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *UserRepository) Update(ctx context.Context, id int64, user *models.User) (*models.User, error) {
	args := m.Called(ctx, id, user)
	updated, _ := args.Get(0).(*models.User)
	return updated, args.Error(1)
}

func (m *UserRepository) Delete(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	removed, _ := args.Get(0).(*models.User)
	return removed, args.Error(1)
}

// RoleRepository mocks the role repository.
type RoleRepository struct {
	mock.Mock
}

func (m *RoleRepository) Create(ctx context.Context, role *models.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *RoleRepository) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	args := m.Called(ctx, id)
	role, _ := args.Get(0).(*models.Role)
	return role, args.Error(1)
}

func (m *RoleRepository) GetByName(ctx context.Context, name string) (*models.Role, error) {
	args := m.Called(ctx, name)
	role, _ := args.Get(0).(*models.Role)
	return role, args.Error(1)
}

func (m *RoleRepository) List(ctx context.Context, search string, sortAsc bool, offset uint64, limit int) ([]models.Role, error) {
	args := m.Called(ctx, search, sortAsc, offset, limit)
	roles, _ := args.Get(0).([]models.Role)
	return roles, args.Error(1)
}

func (m *RoleRepository) Update(ctx context.Context, id int64, role *models.Role) (*models.Role, error) {
	args := m.Called(ctx, id, role)
	updated, _ := args.Get(0).(*models.Role)
	return updated, args.Error(1)
}

func (m *RoleRepository) Delete(ctx context.Context, id int64) (*models.Role, error) {
	args := m.Called(ctx, id)
	removed, _ := args.Get(0).(*models.Role)
	return removed, args.Error(1)
}

// DepartmentRepository mocks the department repository.
type DepartmentRepository struct {
	mock.Mock
}

func (m *DepartmentRepository) Create(ctx context.Context, dept *models.Department) error {
	args := m.Called(ctx, dept)
	return args.Error(0)
}

func (m *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	args := m.Called(ctx, id)
	dept, _ := args.Get(0).(*models.Department)
	return dept, args.Error(1)
}

func (m *DepartmentRepository) List(ctx context.Context, search string, sortAsc bool, offset uint64, limit int) ([]models.Department, error) {
	args := m.Called(ctx, search, sortAsc, offset, limit)
	departments, _ := args.Get(0).([]models.Department)
	return departments, args.Error(1)
}

func (m *DepartmentRepository) Update(ctx context.Context, id int64, dept *models.Department) (*models.Department, error) {
	args := m.Called(ctx, id, dept)
	updated, _ := args.Get(0).(*models.Department)
	return updated, args.Error(1)
}

func (m *DepartmentRepository) Delete(ctx context.Context, id int64) (*models.Department, error) {
	args := m.Called(ctx, id)
	removed, _ := args.Get(0).(*models.Department)
	return removed, args.Error(1)
}

// AttendanceRepository mocks the attendance repository.
type AttendanceRepository struct {
	mock.Mock
}

func (m *AttendanceRepository) Create(ctx context.Context, att *models.Attendance) error {
	args := m.Called(ctx, att)
	return args.Error(0)
}

func (m *AttendanceRepository) GetByID(ctx context.Context, id int64) (*models.Attendance, error) {
	args := m.Called(ctx, id)
	att, _ := args.Get(0).(*models.Attendance)
	return att, args.Error(1)
}

func (m *AttendanceRepository) Search(ctx context.Context, search string, sortAsc bool) ([]models.Attendance, error) {
	args := m.Called(ctx, search, sortAsc)
	records, _ := args.Get(0).([]models.Attendance)
	return records, args.Error(1)
}

func (m *AttendanceRepository) Update(ctx context.Context, id int64, att *models.Attendance) (*models.Attendance, error) {
	args := m.Called(ctx, id, att)
	updated, _ := args.Get(0).(*models.Attendance)
	return updated, args.Error(1)
}

func (m *AttendanceRepository) Delete(ctx context.Context, id int64) (*models.Attendance, error) {
	args := m.Called(ctx, id)
	removed, _ := args.Get(0).(*models.Attendance)
	return removed, args.Error(1)
}

// FacultyRepository mocks the faculty repository.
type FacultyRepository struct {
	mock.Mock
}

func (m *FacultyRepository) Create(ctx context.Context, f *models.Faculty) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	args := m.Called(ctx, id)
	f, _ := args.Get(0).(*models.Faculty)
	return f, args.Error(1)
}

func (m *FacultyRepository) SearchRoster(ctx context.Context, search string, sortAsc bool) ([]dto.FacultyRosterRow, error) {
	args := m.Called(ctx, search, sortAsc)
	rows, _ := args.Get(0).([]dto.FacultyRosterRow)
	return rows, args.Error(1)
}

func (m *FacultyRepository) Update(ctx context.Context, id int64, f *models.Faculty) (*models.Faculty, error) {
	args := m.Called(ctx, id, f)
	updated, _ := args.Get(0).(*models.Faculty)
	return updated, args.Error(1)
}

func (m *FacultyRepository) Delete(ctx context.Context, id int64) (*models.Faculty, error) {
	args := m.Called(ctx, id)
	removed, _ := args.Get(0).(*models.Faculty)
	return removed, args.Error(1)
}

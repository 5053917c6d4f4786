package service

import (
	"context"

	"jhris/internal/dto"
	"jhris/internal/model"
	"jhris/internal/repository"
)

// pageSize is the batch used when a report needs every row.
const pageSize = 100

// ReportService builds read-only summaries over the org entities.
type ReportService interface {
	Headcount(ctx context.Context) (*dto.HeadcountReport, error)
	Roster(ctx context.Context) ([]dto.RosterRow, error)
}

type reportService struct {
	employees   repository.EmployeeRepository
	departments repository.DepartmentRepository
	positions   repository.PositionRepository
}

func NewReportService(employees repository.EmployeeRepository, departments repository.DepartmentRepository, positions repository.PositionRepository) ReportService {
	return &reportService{employees: employees, departments: departments, positions: positions}
}

func (s *reportService) Headcount(ctx context.Context) (*dto.HeadcountReport, error) {
	byStatus, err := s.employees.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	report := &dto.HeadcountReport{ByStatus: make(map[string]int64, len(byStatus))}
	for _, row := range byStatus {
		report.ByStatus[string(row.Status)] = row.Count
		report.TotalEmployees += row.Count
		if row.Status == model.StatusActive {
			report.ActiveEmployees = row.Count
		}
	}
	report.InactiveEmployees = report.TotalEmployees - report.ActiveEmployees

	if report.TotalDepartments, err = s.departments.Count(ctx); err != nil {
		return nil, err
	}

	byDept, err := s.employees.CountByDepartment(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int64, len(byDept))
	for _, row := range byDept {
		if row.DepartmentID == nil {
			report.Unassigned += row.Count
			continue
		}
		counts[*row.DepartmentID] = row.Count
	}

	departments, err := allPages(func(skip, limit int) ([]model.Department, error) {
		return s.departments.List(ctx, skip, limit)
	})
	if err != nil {
		return nil, err
	}
	report.ByDepartment = make([]dto.DepartmentHeadcount, 0, len(departments))
	for _, d := range departments {
		report.ByDepartment = append(report.ByDepartment, dto.DepartmentHeadcount{
			DepartmentID: d.ID,
			Code:         d.Code,
			Name:         d.Name,
			Employees:    counts[d.ID],
		})
	}
	return report, nil
}

func (s *reportService) Roster(ctx context.Context) ([]dto.RosterRow, error) {
	departments, err := allPages(func(skip, limit int) ([]model.Department, error) {
		return s.departments.List(ctx, skip, limit)
	})
	if err != nil {
		return nil, err
	}
	deptNames := make(map[uint]string, len(departments))
	for _, d := range departments {
		deptNames[d.ID] = d.Name
	}

	positions, err := allPages(func(skip, limit int) ([]model.Position, error) {
		return s.positions.List(ctx, skip, limit)
	})
	if err != nil {
		return nil, err
	}
	titles := make(map[uint]string, len(positions))
	for _, p := range positions {
		titles[p.ID] = p.Title
	}

	employees, err := allPages(func(skip, limit int) ([]model.Employee, error) {
		return s.employees.List(ctx, dto.EmployeeFilter{ListParams: dto.ListParams{Skip: skip, Limit: limit}})
	})
	if err != nil {
		return nil, err
	}

	rows := make([]dto.RosterRow, 0, len(employees))
	for _, e := range employees {
		row := dto.RosterRow{
			EmployeeNumber:   e.EmployeeNumber,
			FullName:         e.FullName(),
			Email:            e.Email,
			EmploymentStatus: string(e.EmploymentStatus),
			EmploymentType:   string(e.EmploymentType),
			HireDate:         dto.NewDate(e.HireDate),
		}
		if e.DepartmentID != nil {
			row.Department = deptNames[*e.DepartmentID]
		}
		if e.PositionID != nil {
			row.Position = titles[*e.PositionID]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// allPages calls fetch with increasing offsets until a short page comes back.
func allPages[T any](fetch func(skip, limit int) ([]T, error)) ([]T, error) {
	var all []T
	for skip := 0; ; skip += pageSize {
		page, err := fetch(skip, pageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < pageSize {
			return all, nil
		}
	}
}

package leave

import (
	"context"
	"fmt"

	"github.com/primatek-mfg/erp-backend-go/internal/domain/employee"
	"github.com/primatek-mfg/erp-backend-go/internal/domain/leave"
)

type balanceService struct {
	employeeRepo employee.Repository
	requestRepo  leave.RequestRepository
	entitlements leave.EntitlementTable
}

// NewBalanceService creates the balance calculator. Allotments come from the
// injected entitlement table; consumption is recomputed from stored requests
// on every call, never cached.
func NewBalanceService(
	employeeRepo employee.Repository,
	requestRepo leave.RequestRepository,
	entitlements leave.EntitlementTable,
) leave.BalanceService {
	return &balanceService{
		employeeRepo: employeeRepo,
		requestRepo:  requestRepo,
		entitlements: entitlements,
	}
}

// Balances returns one balance per recognized leave type for the employee and
// year. Consumed counts PENDING and APPROVED requests only; rejected requests
// never consume balance.
func (s *balanceService) Balances(ctx context.Context, employeeID string, year int) ([]leave.Balance, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !emp.IsActive() {
		return nil, employee.ErrEmployeeInactive
	}

	consumed, err := s.consumedByType(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}

	balances := make([]leave.Balance, 0, len(leave.AllLeaveTypes()))
	for _, lt := range leave.AllLeaveTypes() {
		allotted, err := s.entitlements.Allotted(lt)
		if err != nil {
			return nil, err
		}
		balances = append(balances, leave.Balance{
			LeaveType: lt,
			Allotted:  allotted,
			Consumed:  consumed[lt],
			Remaining: allotted - consumed[lt],
		})
	}

	return balances, nil
}

// BalanceFor returns the balance of a single leave type. The Remaining value
// is raw: it may already be negative when the type is overdrawn.
func (s *balanceService) BalanceFor(ctx context.Context, employeeID string, leaveType leave.LeaveType, year int) (leave.Balance, error) {
	allotted, err := s.entitlements.Allotted(leaveType)
	if err != nil {
		return leave.Balance{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return leave.Balance{}, err
	}
	if !emp.IsActive() {
		return leave.Balance{}, employee.ErrEmployeeInactive
	}

	consumed, err := s.consumedByType(ctx, employeeID, year)
	if err != nil {
		return leave.Balance{}, err
	}

	return leave.Balance{
		LeaveType: leaveType,
		Allotted:  allotted,
		Consumed:  consumed[leaveType],
		Remaining: allotted - consumed[leaveType],
	}, nil
}

func (s *balanceService) consumedByType(ctx context.Context, employeeID string, year int) (map[leave.LeaveType]int, error) {
	requests, err := s.requestRepo.ListByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	consumed := make(map[leave.LeaveType]int)
	for _, r := range requests {
		if !r.ConsumesBalance() {
			continue
		}
		consumed[r.LeaveType] += r.Days()
	}

	return consumed, nil
}

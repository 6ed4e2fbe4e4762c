package domain

// Operation enumerates every permission-gated action in the API. Read
// operations (list/get employees and tasks) are public and deliberately
// absent from this set.
type Operation string

const (
	OpCreateEmployee Operation = "create_employee"
	OpUpdateEmployee Operation = "update_employee"
	OpDeleteEmployee Operation = "delete_employee"
	OpCreateTask     Operation = "create_task"
	OpUpdateTask     Operation = "update_task"
	OpDeleteTask     Operation = "delete_task"
	OpAssignTask     Operation = "assign_task"
	OpListUsers      Operation = "list_users"
	OpCreateAdmin    Operation = "create_admin"
)

// Allowed reports whether role may perform op. Admins may do everything;
// clients may create and update but not delete, and have no access to user
// administration. Unknown roles and unknown operations are denied.
func Allowed(role Role, op Operation) bool {
	switch role {
	case RoleAdmin:
		switch op {
		case OpCreateEmployee, OpUpdateEmployee, OpDeleteEmployee,
			OpCreateTask, OpUpdateTask, OpDeleteTask, OpAssignTask,
			OpListUsers, OpCreateAdmin:
			return true
		}
		return false
	case RoleClient:
		switch op {
		case OpCreateEmployee, OpUpdateEmployee,
			OpCreateTask, OpUpdateTask, OpAssignTask:
			return true
		}
		return false
	}
	return false
}

package rbac

// Resources.
const (
	ResourceUser         = "user"
	ResourceEmployee     = "employee"
	ResourceDepartment   = "department"
	ResourceAttendance   = "attendance"
	ResourceLeaveRequest = "leave_request"
	ResourceDashboard    = "dashboard"
	ResourceAuditLog     = "audit_log"
	ResourceRBAC         = "rbac"
)

// Actions.
const (
	ActionRead        = "read"
	ActionList        = "list"
	ActionCreate      = "create"
	ActionUpdate      = "update"
	ActionDelete      = "delete"
	ActionReadDeleted = "read_deleted"
	ActionRestore     = "restore"
	ActionPurge       = "purge"
	ActionManage      = "manage"
	ActionCheckIn     = "check_in"
	ActionApprove     = "approve"
)

type Permission struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

// Policy maps every permission to the roles allowed to use it. The casbin
// enforcer is loaded from this table.
var Policy = map[Permission]RoleSet{
	{ResourceUser, ActionList}:        AdminOrManager,
	{ResourceUser, ActionRead}:        AdminOrManager,
	{ResourceUser, ActionUpdate}:      AdminOrManager,
	{ResourceUser, ActionDelete}:      AdminOnly,
	{ResourceUser, ActionReadDeleted}: AdminOnly,
	{ResourceUser, ActionRestore}:     AdminOnly,
	{ResourceUser, ActionPurge}:       AdminOnly,
	{ResourceUser, ActionManage}:      AdminOnly,

	{ResourceEmployee, ActionRead}:        AnyRole,
	{ResourceEmployee, ActionCreate}:      AdminOrManager,
	{ResourceEmployee, ActionUpdate}:      AdminOrManager,
	{ResourceEmployee, ActionDelete}:      AdminOrManager,
	{ResourceEmployee, ActionReadDeleted}: AdminOrManager,
	{ResourceEmployee, ActionRestore}:     AdminOrManager,
	{ResourceEmployee, ActionPurge}:       AdminOnly,

	{ResourceDepartment, ActionRead}:        AnyRole,
	{ResourceDepartment, ActionCreate}:      AdminOrManager,
	{ResourceDepartment, ActionUpdate}:      AdminOrManager,
	{ResourceDepartment, ActionDelete}:      AdminOrManager,
	{ResourceDepartment, ActionReadDeleted}: AdminOrManager,
	{ResourceDepartment, ActionRestore}:     AdminOrManager,
	{ResourceDepartment, ActionPurge}:       AdminOnly,

	{ResourceAttendance, ActionRead}:        AnyRole,
	{ResourceAttendance, ActionCheckIn}:     AnyRole,
	{ResourceAttendance, ActionCreate}:      AdminOrManager,
	{ResourceAttendance, ActionUpdate}:      AdminOrManager,
	{ResourceAttendance, ActionDelete}:      AdminOrManager,
	{ResourceAttendance, ActionReadDeleted}: AdminOrManager,
	{ResourceAttendance, ActionRestore}:     AdminOrManager,
	{ResourceAttendance, ActionPurge}:       AdminOnly,

	{ResourceLeaveRequest, ActionRead}:        AnyRole,
	{ResourceLeaveRequest, ActionCreate}:      AnyRole,
	{ResourceLeaveRequest, ActionUpdate}:      AdminOrManager,
	{ResourceLeaveRequest, ActionDelete}:      AdminOrManager,
	{ResourceLeaveRequest, ActionApprove}:     AdminOrManager,
	{ResourceLeaveRequest, ActionReadDeleted}: AdminOrManager,
	{ResourceLeaveRequest, ActionRestore}:     AdminOrManager,
	{ResourceLeaveRequest, ActionPurge}:       AdminOnly,

	{ResourceDashboard, ActionRead}: AdminOrManager,
	{ResourceAuditLog, ActionRead}:  AdminOnly,
	{ResourceRBAC, ActionRead}:      AdminOnly,
}

package storage

import (
	"strings"

	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	DeviceID  string
	DeviceIDs []string
	HomeID    string
	AreaID    *string
	ParentID  *string
	UserID    string
	AppCode   string

	Controller *bool

	Name           string
	NormalizedName string

	IncludeDeleted bool

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.DeviceID != "" {
		args["device_id"] = c.DeviceID
	}
	if len(c.DeviceIDs) > 0 {
		args["device_ids"] = c.DeviceIDs
	}
	if c.HomeID != "" {
		args["home_id"] = c.HomeID
	}
	if c.AreaID != nil {
		args["area_id"] = *c.AreaID
	}
	if c.ParentID != nil {
		args["parent_id"] = *c.ParentID
	}
	if c.UserID != "" {
		args["user_id"] = c.UserID
	}
	if c.AppCode != "" {
		args["app_code"] = c.AppCode
	}
	if c.Controller != nil {
		args["is_controller"] = *c.Controller
	}
	if c.Name != "" {
		args["name"] = c.Name
	}
	if c.NormalizedName != "" {
		args["normalized_name"] = c.NormalizedName
	}
	if c.offset != nil {
		args["offset"] = *c.offset
	}
	if c.limit != nil {
		args["limit"] = *c.limit
	}

	return args
}

func (c Condition) Where() string {
	where := []string{}

	if c.DeviceID != "" {
		where = append(where, "device_id = @device_id")
	}
	if len(c.DeviceIDs) > 0 {
		where = append(where, "device_id = ANY(@device_ids)")
	}
	if c.HomeID != "" {
		where = append(where, "home_id = @home_id")
	}
	if c.AreaID != nil {
		where = append(where, "area_id = @area_id")
	}
	if c.ParentID != nil {
		where = append(where, "parent_id = @parent_id")
	}
	if c.UserID != "" {
		where = append(where, "user_id = @user_id")
	}
	if c.AppCode != "" {
		where = append(where, "app_code = @app_code")
	}
	if c.Controller != nil {
		where = append(where, "is_controller = @is_controller")
	}
	if c.Name != "" {
		where = append(where, "name = @name")
	}
	if c.NormalizedName != "" {
		where = append(where, "lower(regexp_replace(name, '\\s', '', 'g')) = @normalized_name")
	}
	if !c.IncludeDeleted {
		where = append(where, "deleted = FALSE")
	}

	if len(where) == 0 {
		return "TRUE"
	}

	return strings.Join(where, " AND ")
}

func (c Condition) OrderBy() string {
	if c.sortBy == "" {
		return ""
	}

	order := c.sortOrder
	if order == "" {
		order = "ASC"
	}

	return "ORDER BY " + c.sortBy + " " + order
}

func (c Condition) Offset() int {
	if c.offset != nil {
		return *c.offset
	}
	return 0
}

func (c Condition) Limit() int {
	if c.limit != nil {
		return *c.limit
	}
	return 0
}

func WithDeviceID(deviceID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.DeviceID = deviceID
		return c
	}
}

func WithDeviceIDs(deviceIDs []string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.DeviceIDs = deviceIDs
		return c
	}
}

func WithHomeID(homeID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.HomeID = homeID
		return c
	}
}

func WithAreaID(areaID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AreaID = &areaID
		return c
	}
}

func WithParentID(parentID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.ParentID = &parentID
		return c
	}
}

func WithUserID(userID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.UserID = userID
		return c
	}
}

func WithAppCode(appCode string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AppCode = appCode
		return c
	}
}

func WithController(isController bool) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Controller = &isController
		return c
	}
}

func WithName(name string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Name = name
		return c
	}
}

// WithNormalizedName matches names with case and whitespace ignored, so that
// "Living Room" and "livingroom" are considered the same name.
func WithNormalizedName(name string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.NormalizedName = strings.ToLower(strings.Join(strings.Fields(name), ""))
		return c
	}
}

func WithDeleted() ConditionFunc {
	return func(c *Condition) *Condition {
		c.IncludeDeleted = true
		return c
	}
}

func WithSortBy(sortBy string) ConditionFunc {
	return func(c *Condition) *Condition {
		switch strings.ToLower(sortBy) {
		case "device_id":
			c.sortBy = "device_id"
		case "name":
			c.sortBy = "name"
		case "position":
			c.sortBy = "position"
		case "created_on":
			c.sortBy = "created_on"
		}
		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		if desc {
			c.sortOrder = "DESC"
		} else {
			c.sortOrder = "ASC"
		}
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func newCondition(conditions ...ConditionFunc) *Condition {
	c := &Condition{}
	for _, f := range conditions {
		f(c)
	}
	return c
}

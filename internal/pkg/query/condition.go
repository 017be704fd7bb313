package query

import "fmt"

// Condition represents a WHERE clause condition.
// Implementations generate SQL fragments with Spanner named parameters
// (@p0, @p1, ...) starting at paramIndex.
type Condition interface {
	// SQL returns the SQL fragment and the parameters it binds.
	SQL(paramIndex int) (string, map[string]interface{})
}

// compareCondition implements a binary comparison (field <op> value).
type compareCondition struct {
	field string
	op    string
	value interface{}
}

func (c *compareCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s %s @%s", c.field, c.op, paramName)
	return sql, map[string]interface{}{paramName: c.value}
}

// Eq creates an equality condition.
// Example: Eq("category", "iPhones") generates "category = @p0".
func Eq(field string, value interface{}) Condition {
	return &compareCondition{field: field, op: "=", value: value}
}

// Lt creates a strict less-than condition.
// Example: Lt("processed_at", cutoff) generates "processed_at < @p0".
func Lt(field string, value interface{}) Condition {
	return &compareCondition{field: field, op: "<", value: value}
}

// Gte creates a greater-than-or-equal condition.
func Gte(field string, value interface{}) Condition {
	return &compareCondition{field: field, op: ">=", value: value}
}

// nullCondition implements IS NULL / IS NOT NULL.
type nullCondition struct {
	field  string
	negate bool
}

func (c *nullCondition) SQL(int) (string, map[string]interface{}) {
	if c.negate {
		return fmt.Sprintf("%s IS NOT NULL", c.field), map[string]interface{}{}
	}
	return fmt.Sprintf("%s IS NULL", c.field), map[string]interface{}{}
}

// IsNull creates a WHERE condition for NULL checks.
func IsNull(field string) Condition {
	return &nullCondition{field: field}
}

// IsNotNull creates a WHERE condition for NOT NULL checks.
func IsNotNull(field string) Condition {
	return &nullCondition{field: field, negate: true}
}

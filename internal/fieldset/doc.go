// Package fieldset stores pending builder fields: values keyed by field name,
// iterated in first-insertion order.
package fieldset

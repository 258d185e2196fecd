package codegen

import "fmt"

func disptableLabel(class string) string { return class + "_disptable" }
func prototypeLabel(class string) string { return class + "_prototype" }
func initLabel(class string) string      { return class + "_init" }
func methodLabel(definingClass, method string) string {
	return definingClass + "." + method
}
func strConstLabel(i int) string  { return fmt.Sprintf("str_const%d", i) }
func intConstLabel(i int) string  { return fmt.Sprintf("int_const%d", i) }
func boolConstLabel(b bool) string {
	if b {
		return "bool_const1"
	}
	return "bool_const0"
}

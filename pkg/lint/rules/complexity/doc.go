// Package complexity provides lint rules that bound the size of constructs.
//
// Rules in this package:
//   - complexity.module_members: module members (WPS202) and decorators (WPS216)
//   - complexity.conditions: boolean operands (WPS222) and compare chains (WPS228)
//   - complexity.elifs: elif branches per chain (WPS223)
//   - complexity.try_except: except cases (WPS225), try body (WPS229),
//     exceptions per handler (WPS239) and finally body (WPS243)
//   - complexity.output_tuple: returned and yielded tuples (WPS227)
//   - complexity.tuple_unpack: unpacking targets (WPS236)
//   - complexity.type_params: type parameters (WPS240)
//
// Thresholds come from lint.Options where users may override them, or from
// the compiled-in lint.Max* constants.
package complexity

package syntax

// Kind identifies the syntactic class of a node.
// Names follow the Python ast module so that trees emitted by an external
// parser map one-to-one onto kinds.
type Kind int

// Node kinds.
const (
	KindUnknown Kind = iota

	// Module and declarations
	KindModule
	KindClassDef
	KindFunctionDef
	KindAsyncFunctionDef
	KindLambda
	KindTypeAlias
	KindTypeVar
	KindParamSpec
	KindTypeVarTuple
	KindArg

	// Statements
	KindAssign
	KindAnnAssign
	KindAugAssign
	KindExpr
	KindReturn
	KindIf
	KindFor
	KindAsyncFor
	KindWhile
	KindWith
	KindAsyncWith
	KindTry
	KindTryStar
	KindExceptHandler
	KindMatch
	KindMatchCase
	KindRaise
	KindPass
	KindBreak
	KindContinue
	KindDelete
	KindGlobal
	KindNonlocal
	KindImport
	KindImportFrom

	// Expressions
	KindYield
	KindYieldFrom
	KindAwait
	KindIfExp
	KindBoolOp
	KindBinOp
	KindUnaryOp
	KindCompare
	KindCall
	KindKeyword
	KindName
	KindAttribute
	KindSubscript
	KindStarred
	KindTuple
	KindList
	KindSet
	KindDict
	KindConstant
	KindJoinedStr

	kindCount
)

var kindNames = [kindCount]string{
	KindUnknown:          "Unknown",
	KindModule:           "Module",
	KindClassDef:         "ClassDef",
	KindFunctionDef:      "FunctionDef",
	KindAsyncFunctionDef: "AsyncFunctionDef",
	KindLambda:           "Lambda",
	KindTypeAlias:        "TypeAlias",
	KindTypeVar:          "TypeVar",
	KindParamSpec:        "ParamSpec",
	KindTypeVarTuple:     "TypeVarTuple",
	KindArg:              "arg",
	KindAssign:           "Assign",
	KindAnnAssign:        "AnnAssign",
	KindAugAssign:        "AugAssign",
	KindExpr:             "Expr",
	KindReturn:           "Return",
	KindIf:               "If",
	KindFor:              "For",
	KindAsyncFor:         "AsyncFor",
	KindWhile:            "While",
	KindWith:             "With",
	KindAsyncWith:        "AsyncWith",
	KindTry:              "Try",
	KindTryStar:          "TryStar",
	KindExceptHandler:    "ExceptHandler",
	KindMatch:            "Match",
	KindMatchCase:        "match_case",
	KindRaise:            "Raise",
	KindPass:             "Pass",
	KindBreak:            "Break",
	KindContinue:         "Continue",
	KindDelete:           "Delete",
	KindGlobal:           "Global",
	KindNonlocal:         "Nonlocal",
	KindImport:           "Import",
	KindImportFrom:       "ImportFrom",
	KindYield:            "Yield",
	KindYieldFrom:        "YieldFrom",
	KindAwait:            "Await",
	KindIfExp:            "IfExp",
	KindBoolOp:           "BoolOp",
	KindBinOp:            "BinOp",
	KindUnaryOp:          "UnaryOp",
	KindCompare:          "Compare",
	KindCall:             "Call",
	KindKeyword:          "keyword",
	KindName:             "Name",
	KindAttribute:        "Attribute",
	KindSubscript:        "Subscript",
	KindStarred:          "Starred",
	KindTuple:            "Tuple",
	KindList:             "List",
	KindSet:              "Set",
	KindDict:             "Dict",
	KindConstant:         "Constant",
	KindJoinedStr:        "JoinedStr",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	// Accept the capitalized spellings of the lowercase ast classes too.
	m["Arg"] = KindArg
	m["Keyword"] = KindKeyword
	m["MatchCase"] = KindMatchCase
	return m
}()

// String returns the ast class name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// ParseKind converts an ast class name to a Kind.
// Returns KindUnknown and false for unrecognized names.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	if !ok || k == KindUnknown {
		return KindUnknown, false
	}
	return k, true
}

// IsFunction reports whether the kind declares a function.
func (k Kind) IsFunction() bool {
	return k == KindFunctionDef || k == KindAsyncFunctionDef
}

// IsScopeOwner reports whether nodes of this kind open a new scope for
// everything beneath them.
func (k Kind) IsScopeOwner() bool {
	return k == KindClassDef || k.IsFunction()
}

package pbx

// SourceTree is the symbolic root a node's path is resolved against.
type SourceTree string

const (
	SourceTreeAbsolute      SourceTree = "<absolute>"
	SourceTreeGroup         SourceTree = "<group>"
	SourceTreeSourceRoot    SourceTree = "SOURCE_ROOT"
	SourceTreeDeveloperDir  SourceTree = "DEVELOPER_DIR"
	SourceTreeBuildProducts SourceTree = "BUILT_PRODUCTS_DIR"
	SourceTreeSDKRoot       SourceTree = "SDKROOT"
)

// Valid reports whether st is one of the known source-tree keys.
func (st SourceTree) Valid() bool {
	switch st {
	case SourceTreeAbsolute, SourceTreeGroup, SourceTreeSourceRoot,
		SourceTreeDeveloperDir, SourceTreeBuildProducts, SourceTreeSDKRoot:
		return true
	}
	return false
}

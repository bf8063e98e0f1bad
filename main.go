// milvus-project-helper is a tool for command-line administration of the
// projects of a Milvus deployment.
package main

import (
	"github.com/graelo/milvus-project-helper/cmd"
)

func main() {
	cmd.Run()
}

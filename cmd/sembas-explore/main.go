// Command sembas-explore drives boundary exploration against either a
// built-in reference system-under-test (sphere, cube) or a remote one
// connected over TCP.
package main

import "github.com/toazbenj/sembas-go/cmd/sembas-explore/cmd"

func main() {
	cmd.Execute()
}

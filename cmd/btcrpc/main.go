// Command btcrpc calls a single JSON-RPC method on a Bitcoin Core node and
// prints the result.
//
//	btcrpc --url http://127.0.0.1:18443/ --user alice --password secret getblock <hash> 2
package main

import "os"

func main() {
	os.Exit(Execute())
}

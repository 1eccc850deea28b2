// This file is part of yasp.
//
// yasp is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// yasp is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with yasp.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/yasp-player/yasp/curated"
	"github.com/yasp-player/yasp/modalflag"
	"github.com/yasp-player/yasp/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

// exit codes.
const (
	exitArgs = 10
	exitMode = 20
)

// pattern for errors caused by the command line arguments. these errors exit
// with exitArgs rather than exitMode.
const argsError = "argument error: %v"

// #mainthread
func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// the launched mode is told about the first interrupt through the context.
	// a second interrupt ends the program without waiting for the mode
	ctx, cancel := context.WithCancel(context.Background())

	// #ctrlc
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(ctx, sync, os.Args[1:])

	interrupted := false
	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Print("\r")
			if interrupted {
				exitVal = exitMode
				done = true
			} else {
				interrupted = true
				cancel()
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}
		}
	}

	cancel()
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine.
func launch(ctx context.Context, sync *mainSync, args []string) {
	sync.state <- stateRequest{req: reqQuit, args: run(ctx, args, os.Stdout)}
}

// run the mode selected by the arguments and return the exit code.
func run(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("PLAY", "INFO", "LIST", "EXTRACT", "VERSION")
	md.AdditionalHelp("the default mode is PLAY. use -help with a mode for the flags of that mode")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}

	switch md.Mode() {
	case "PLAY":
		err = play(ctx, md, output)

	case "INFO":
		err = info(md, output)

	case "LIST":
		err = list(md, output)

	case "EXTRACT":
		err = extract(ctx, md, output)

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		if curated.Is(err, argsError) {
			return exitArgs
		}
		return exitMode
	}

	return 0
}

// parseMode parses the flags of a mode. the error from Parse() is returned
// as an argsError. ok is false if the mode should end immediately.
func parseMode(md *modalflag.Modes) (ok bool, err error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return false, nil
	case modalflag.ParseError:
		return false, curated.Errorf(argsError, err)
	}
	return true, nil
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	if ok, err := parseMode(md); !ok {
		return err
	}

	if *revision {
		v, r, _ := version.Version()
		fmt.Fprintf(output, "%s %s\n%s\n", version.ApplicationName, v, r)
		return nil
	}

	fmt.Fprintln(output, version.String())
	return nil
}

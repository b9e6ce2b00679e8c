package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sarchlab/staticvec"
	"github.com/sarchlab/staticvec/recording"
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Replay an operation script against a bounded vector",
	Long: `Run reads an operation script from the given file, or from stdin ` +
		`when no file is given, and applies it line by line to a fixed-capacity ` +
		`vector of integers. Supported operations:

	push V          append V
	pop             remove the last element
	insert I V      insert V before position I
	erase I         remove the element at position I
	resize N        change the length to N, zero-filling new slots
	delete V        remove all elements equal to V
	clear           remove all elements

Lines starting with # are ignored.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	runCmd.Flags().Int("capacity", 16, "capacity of the vector")
	runCmd.Flags().String("trace", "",
		"record the operation trace into this SQLite database")
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	capacity, _ := cmd.Flags().GetInt("capacity")
	tracePath, _ := cmd.Flags().GetString("trace")

	input := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}

	var recorder recording.DataRecorder
	if tracePath != "" {
		recorder = recording.New(tracePath)
		recorder.CreateTable("ops", recording.OpTrace{})
	}

	vec := staticvec.New[int](capacity)

	if err := applyScript(vec, input, recorder); err != nil {
		return err
	}

	if recorder != nil {
		recorder.Flush()
	}

	fmt.Fprintf(cmd.OutOrStdout(), "len=%d cap=%d elements=%v\n",
		vec.Len(), vec.Capacity(), vec.Data())

	return nil
}

func applyScript(
	vec *staticvec.Vec[int],
	input io.Reader,
	recorder recording.DataRecorder,
) error {
	scanner := bufio.NewScanner(input)
	lineNo := 0
	seq := uint64(0)

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if err := applyOp(vec, fields); err != nil {
			return fmt.Errorf("line %d: %q: %w", lineNo, line, err)
		}

		if recorder != nil {
			seq++
			recorder.InsertData("ops", recording.OpTrace{
				Seq:       seq,
				Buffer:    "Script",
				Op:        fields[0],
				Item:      strings.Join(fields[1:], " "),
				SizeAfter: vec.Len(),
			})
		}
	}

	return scanner.Err()
}

func applyOp(vec *staticvec.Vec[int], fields []string) error {
	op, operands := fields[0], fields[1:]

	switch op {
	case "push":
		v, err := operand(operands, 0)
		if err != nil {
			return err
		}
		return vec.PushBack(v)
	case "pop":
		if vec.Empty() {
			return fmt.Errorf("pop on empty vector")
		}
		vec.PopBack()
		return nil
	case "insert":
		i, err := operand(operands, 0)
		if err != nil {
			return err
		}
		v, err := operand(operands, 1)
		if err != nil {
			return err
		}
		if i < 0 || i > vec.Len() {
			return fmt.Errorf("insert position %d out of range", i)
		}
		return vec.Insert(i, v)
	case "erase":
		i, err := operand(operands, 0)
		if err != nil {
			return err
		}
		if i < 0 || i >= vec.Len() {
			return fmt.Errorf("erase position %d out of range", i)
		}
		vec.Erase(i)
		return nil
	case "resize":
		n, err := operand(operands, 0)
		if err != nil {
			return err
		}
		return vec.Resize(n)
	case "delete":
		v, err := operand(operands, 0)
		if err != nil {
			return err
		}
		staticvec.Delete(vec, v)
		return nil
	case "clear":
		vec.Clear()
		return nil
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
}

func operand(operands []string, i int) (int, error) {
	if i >= len(operands) {
		return 0, fmt.Errorf("missing operand %d", i+1)
	}

	v, err := strconv.Atoi(operands[i])
	if err != nil {
		return 0, fmt.Errorf("operand %q is not an integer", operands[i])
	}

	return v, nil
}

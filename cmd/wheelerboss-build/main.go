// Command wheelerboss-build is a demonstration harness: it builds a
// wheelerboss index from a FASTA file of input sequences and reports the
// colex rank of every k-mer read from a query FASTA file (or, without
// -queries, every k-mer of the input itself). It is not part of the
// tested contract (spec.md section 6, "the source's main functions are
// demonstration harnesses only").
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/kortschak/biogo/io/seqio/fasta"

	"github.com/ndaniels/wheelerboss"
)

var (
	flagK           = wheelerboss.DefaultBuildConfig.K
	flagVariant     = "boss"
	flagQueries     = ""
	flagGoMaxProcs  = runtime.NumCPU()
	flagCpuProfile  = ""
	flagMemProfile  = ""
	flagDump        = false
)

func init() {
	log.SetFlags(0)

	flag.IntVar(&flagK, "k", flagK, "Node label length (k-mer size).")
	flag.StringVar(&flagVariant, "variant", flagVariant,
		"Index encoding to build: \"boss\" or \"sbwt\".")
	flag.StringVar(&flagQueries, "queries", flagQueries,
		"FASTA file of query sequences to search, one k-mer per\n"+
			"\twindow of each record. Defaults to re-querying the input.")
	flag.IntVar(&flagGoMaxProcs, "p", flagGoMaxProcs,
		"The maximum number of CPUs that can be executing simultaneously.")
	flag.StringVar(&flagCpuProfile, "cpuprofile", flagCpuProfile,
		"When set, a CPU profile will be written to the file specified.")
	flag.StringVar(&flagMemProfile, "memprofile", flagMemProfile,
		"When set, a memory profile will be written to the file specified.")
	flag.BoolVar(&flagDump, "dump", flagDump,
		"When set, print the built index's bit vectors and C array\n"+
			"\t(diagnostic only, see spec.md section 6).")

	flag.Usage = usage
	flag.Parse()

	runtime.GOMAXPROCS(flagGoMaxProcs)
}

func main() {
	if flag.NArg() != 1 {
		flag.Usage()
	}

	if len(flagCpuProfile) > 0 {
		f, err := os.Create(flagCpuProfile)
		if err != nil {
			fatalf("%s\n", err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	inputs, err := readFastaSeqs(flag.Arg(0))
	if err != nil {
		fatalf("could not read %q: %s\n", flag.Arg(0), err)
	}

	conf := wheelerboss.BuildConfig{K: flagK, Variant: parseVariant(flagVariant)}
	idx, err := wheelerboss.Build(inputs, conf)
	if err != nil {
		fatalf("could not build index: %s\n", err)
	}
	log.Printf("built %s index: %d nodes", flagVariant, idx.NNodes())

	if flagDump {
		dumpIndex(idx, os.Stdout)
	}

	queries, err := loadQueries(inputs, flagK)
	if err != nil {
		fatalf("could not load queries: %s\n", err)
	}

	for _, res := range wheelerboss.RunQueries(idx, queries) {
		if res.Err != nil {
			log.Printf("%s\terror: %s", res.Query, res.Err)
			continue
		}
		if res.Rank == wheelerboss.Absent {
			fmt.Printf("%s\tabsent\n", res.Query)
			continue
		}
		fmt.Printf("%s\t%d\n", res.Query, res.Rank)
	}

	if len(flagMemProfile) > 0 {
		writeMemProfile(flagMemProfile)
	}
}

// parseVariant maps the -variant flag to a wheelerboss.Variant, defaulting
// to BOSS for any value other than "sbwt".
func parseVariant(s string) wheelerboss.Variant {
	if s == "sbwt" {
		return wheelerboss.VariantSBWT
	}
	return wheelerboss.VariantBOSS
}

// readFastaSeqs reads every record of a FASTA file into a slice of
// uppercase sequence strings, the same way sequence.go's newReferenceSeq
// normalizes biogo records before use.
func readFastaSeqs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := fasta.NewReader(f)
	var out []string
	for {
		s, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, strings.ToUpper(string(s.Seq)))
	}
	return out, nil
}

// loadQueries returns the query k-mers: every window of -queries if set,
// otherwise every k-mer of the built input itself.
func loadQueries(inputs []string, k int) ([]string, error) {
	sources := inputs
	if flagQueries != "" {
		var err error
		sources, err = readFastaSeqs(flagQueries)
		if err != nil {
			return nil, err
		}
	}

	var queries []string
	for _, s := range sources {
		for i := 0; i+k <= len(s); i++ {
			queries = append(queries, s[i:i+k])
		}
	}
	return queries, nil
}

// dumpIndex writes the built index's internal representation, whichever
// concrete type it is. Diagnostic only (spec.md section 6).
func dumpIndex(idx wheelerboss.Index, w io.Writer) {
	switch v := idx.(type) {
	case *wheelerboss.BOSSIndex:
		v.Dump(w)
	case *wheelerboss.SBWTIndex:
		v.Dump(w)
	}
}

func writeMemProfile(path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Printf("could not create memory profile: %s", err)
		return
	}
	defer f.Close()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Printf("could not write memory profile: %s", err)
	}
}

func fatalf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format, v...)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr,
		"\nUsage: %s [flags] input-fasta-file\n", os.Args[0])
	flag.PrintDefaults()
	os.Exit(1)
}

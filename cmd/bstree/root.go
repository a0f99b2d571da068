/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/macromogic/bstree/bstree"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bstree",
	Short: "Compare the bstree ordered set against the builtin map",
	Long:  ``,

	Run: func(cmd *cobra.Command, args []string) {
		key, err := cmd.Flags().GetString("N")
		if err != nil {
			log.Fatal(err)
		}
		n, err := strconv.Atoi(key)
		if err != nil {
			log.Fatal(err)
		}

		mdp := NewDefaultdb()
		defer mdp.Close()
		tr := bstree.New[int]()

		timedp := MeasurerDMP(n, mdp, SetMap)
		log.Println(timedp)
		timedp = MeasurerDMP(n, mdp, GetMap)
		log.Println(timedp)

		timetr := MeasurerTree(n, tr, SetTree)
		log.Println(timetr)
		timetr = MeasurerTree(n, tr, GetTree)
		log.Println(timetr)
		timetr = MeasurerTree(n, tr, ScanTree)
		log.Println(timetr)
	},
}

func SetMap(N int, mdp *Defaultdb) {
	fmt.Println("--------------------------- default map create ---------------------------")
	for i := 0; i < N; i++ {
		mdp.Set(strconv.Itoa(i), strconv.Itoa(i))
	}
	fmt.Println("--------------------------- default map create ---------------------------")
}

func GetMap(N int, mdp *Defaultdb) {
	fmt.Println("--------------------------- default map get ---------------------------")
	mdp.Get(strconv.Itoa(N - 2))
	fmt.Println("--------------------------- default map get ---------------------------")
}

func SetTree(N int, tr *bstree.Tree[int]) {
	fmt.Println("--------------------------- bstree create ---------------------------")
	for _, v := range rand.Perm(N) {
		tr.Insert(v)
	}
	fmt.Println("--------------------------- bstree create ---------------------------")
}

func GetTree(N int, tr *bstree.Tree[int]) {
	fmt.Println("--------------------------- bstree get ---------------------------")
	tr.Find(N - 2)
	fmt.Println("--------------------------- bstree get ---------------------------")
}

// ScanTree walks the whole set in order, something the builtin map cannot
// do without sorting its keys first.
func ScanTree(N int, tr *bstree.Tree[int]) {
	fmt.Println("--------------------------- bstree scan ---------------------------")
	count := 0
	tr.Ascend(func(int) bool {
		count++
		return true
	})
	fmt.Println("--------------------------- bstree scan ---------------------------")
}

func MeasurerDMP(N int, mdp *Defaultdb, fnc func(N int, mdp *Defaultdb)) time.Duration {
	start := time.Now()
	fnc(N, mdp)
	end := time.Now()
	return end.Sub(start)
}

func MeasurerTree(N int, tr *bstree.Tree[int], fnc func(N int, tr *bstree.Tree[int])) time.Duration {
	start := time.Now()
	fnc(N, tr)
	end := time.Now()
	return end.Sub(start)
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringP("N", "N", "", "number of keys in the tree")
}

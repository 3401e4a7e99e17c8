package gemini

// assessmentPreamble frames every prompt with the Bloom's taxonomy mapping
// for the three difficulty levels. The trailing space is deliberate.
const assessmentPreamble = "I am creating an assessment with the following specifications. " +
	"Low complexity should be Blooms level 1 and 2 that test recall and comprehension. " +
	"Medium complexity should be Blooms level 3 of type application. " +
	"High complexity should be Blooms level 4 of type analysis, preferably scenario-based. "

// mcqFormatTemplate pins the answer layout the model must produce. It is
// appended verbatim to every prompt. The embedded code fence rules out a
// raw string literal here.
const mcqFormatTemplate = "MCQ strictly has to be in below format:\n" +
	"Format:\n **Question 1 question**\n" +
	"A. Option 1\n" +
	"B. Option 2\n" +
	"C. Option 3\n" +
	"D. Option 4\n" +
	"\n**Answer: Option no. Answer**\n" +
	"MCQ Format Example:\n" +
	"**Question 10**\n" +
	"What is the purpose of the following code?\n" +
	"```c\n" +
	"int arr[] = {1, 2, 3, 4, 5};\n" +
	"int sum, product;\n" +
	"sum = product = 1;\n" +
	"for (int i = 0; i < 5; i++) {\n" +
	"  sum += arr[i];\n" +
	"  product *= arr[i];\n" +
	"}\n" +
	"```\n" +
	"A. To calculate the sum and product of all elements in the array\n" +
	"B. To calculate the average and standard deviation of all elements in the array\n" +
	"C. To reverse the order of elements in the array\n" +
	"D. To sort the elements in the array\n" +
	"\n**Answer: A. To calculate the sum and product of all elements in the array**\n" +
	"No need to separate questions topic-wise and mention the topic and " +
	"Write complete answer don't change the example format, " +
	"all MCQ questions should be in given format"

// promptText assembles the full text sent to the model for one prompt:
// preamble, newline, the rendered request sentence, then the format
// template.
func promptText(prompt string) string {
	return assessmentPreamble + "\n" + prompt + mcqFormatTemplate
}

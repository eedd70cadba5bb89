package question

import "github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/domain/session"

// keyPoints lists the terms a strong answer is expected to touch for
// each category. Consumers treat a missing entry as "no expectations".
var keyPoints = map[string][]string{
	"React.js":   {"component", "state", "props", "hook", "render", "virtual dom"},
	"JavaScript": {"closure", "scope", "prototype", "async", "event loop", "hoisting"},
	"Node.js":    {"event loop", "stream", "module", "middleware", "npm", "non-blocking"},
	"Python":     {"list", "dictionary", "class", "decorator", "generator", "gil"},
}

// pools holds the canonical prompts per category and difficulty.
var pools = map[string]map[session.Difficulty][]string{
	"React.js": {
		session.DifficultyBeginner: {
			"What is React and what are its main features?",
			"Explain the difference between functional and class components.",
			"What is JSX and why is it used in React?",
			"How do you handle events in React?",
			"What are React props and how do you use them?",
			"Explain the concept of state in React.",
			"What is the virtual DOM?",
			"How do you conditionally render elements in React?",
			"What are React keys and why are they important?",
			"How do you style components in React?",
		},
		session.DifficultyIntermediate: {
			"Explain React hooks and their benefits.",
			"What is the useEffect hook and when would you use it?",
			"How does React handle state management?",
			"Explain the component lifecycle methods.",
			"What is context API and when would you use it?",
			"How do you optimize React performance?",
			"What are higher-order components (HOCs)?",
			"Explain React Router and how to implement routing.",
			"What is the difference between controlled and uncontrolled components?",
			"How do you handle forms in React?",
		},
		session.DifficultyAdvanced: {
			"Explain React Fiber architecture.",
			"How would you implement a custom hook?",
			"What are the performance implications of re-renders?",
			"How do you implement code splitting in React?",
			"Explain React Suspense and lazy loading.",
			"What are render props and how do they work?",
			"How do you test React components?",
			"Explain React's reconciliation process.",
			"How would you implement a global state management solution?",
			"What are the best practices for React performance optimization?",
		},
		session.DifficultyExpert: {
			"Design a scalable React architecture for a large application.",
			"How would you implement server-side rendering with React?",
			"Explain the internals of React's reconciliation algorithm.",
			"How do you handle memory leaks in React applications?",
			"What are the trade-offs between different state management solutions?",
			"How would you implement micro-frontends with React?",
			"Explain React's concurrent features and their benefits.",
			"How do you optimize bundle size in large React applications?",
			"What are the security considerations in React applications?",
			"How would you implement a design system in React?",
		},
	},
	"JavaScript": {
		session.DifficultyBeginner: {
			"What are the primitive data types in JavaScript?",
			"Explain the difference between let, const, and var.",
			"What is hoisting in JavaScript?",
			"How do you create and call a function?",
			"What are arrays and how do you use them?",
			"Explain if-else statements and loops.",
			"What is the DOM and how do you manipulate it?",
			"How do you handle user input in JavaScript?",
			"What are objects in JavaScript?",
			"Explain type conversion in JavaScript.",
		},
		session.DifficultyIntermediate: {
			"What are closures and how do they work?",
			"Explain the concept of 'this' in JavaScript.",
			"What are promises and how do you use them?",
			"What is async/await and how does it work?",
			"Explain prototypal inheritance.",
			"What are arrow functions and how do they differ from regular functions?",
			"How does JavaScript handle asynchronous operations?",
			"What are callback functions?",
			"Explain event bubbling and capturing.",
			"What is destructuring assignment?",
		},
		session.DifficultyAdvanced: {
			"Explain the JavaScript event loop.",
			"What are generators and iterators?",
			"How does garbage collection work in JavaScript?",
			"What are Web Workers and when would you use them?",
			"Explain the module system in JavaScript.",
			"What are Symbols and when would you use them?",
			"How do you implement inheritance in JavaScript?",
			"What are design patterns commonly used in JavaScript?",
			"Explain memory leaks and how to prevent them.",
			"What are the performance implications of different JavaScript features?",
		},
		session.DifficultyExpert: {
			"How would you implement a JavaScript engine?",
			"Explain V8's optimization techniques.",
			"How do you debug performance issues in JavaScript?",
			"What are the internals of JavaScript's type system?",
			"How would you implement a custom Promise library?",
			"Explain JavaScript's compilation and execution phases.",
			"How do you handle large-scale JavaScript applications?",
			"What are the security implications of different JavaScript features?",
			"How would you implement a JavaScript framework?",
			"Explain the trade-offs between different JavaScript patterns.",
		},
	},
	"Node.js": {
		session.DifficultyBeginner: {
			"What is Node.js and what is it used for?",
			"How do you create a simple HTTP server?",
			"What is npm and how do you use it?",
			"Explain the difference between Node.js and browser JavaScript.",
			"How do you read files in Node.js?",
			"What are modules in Node.js?",
			"How do you handle command line arguments?",
			"What is package.json?",
			"How do you install and use external packages?",
			"What is the difference between global and local packages?",
		},
		session.DifficultyIntermediate: {
			"Explain the Node.js event loop.",
			"What are streams in Node.js?",
			"How do you handle errors in Node.js?",
			"What is Express.js and how do you use it?",
			"How do you create REST APIs with Node.js?",
			"What is middleware in Express?",
			"How do you connect to databases in Node.js?",
			"What are environment variables and how do you use them?",
			"How do you handle file uploads?",
			"What is authentication and how do you implement it?",
		},
		session.DifficultyAdvanced: {
			"How do you scale Node.js applications?",
			"What are child processes in Node.js?",
			"How do you implement clustering?",
			"What are the security best practices for Node.js?",
			"How do you monitor and debug Node.js applications?",
			"What are microservices and how do you implement them?",
			"How do you optimize Node.js performance?",
			"What are worker threads?",
			"How do you implement caching strategies?",
			"What are the best practices for Node.js architecture?",
		},
		session.DifficultyExpert: {
			"How would you design a high-performance Node.js system?",
			"What are the internals of the Node.js event loop?",
			"How do you implement custom streams in Node.js?",
			"How would you build a Node.js framework?",
			"What are the memory management strategies in Node.js?",
			"How do you implement distributed systems with Node.js?",
			"How would you optimize Node.js for IoT applications?",
			"What are the trade-offs of different Node.js deployment strategies?",
			"How do you implement real-time systems with Node.js?",
			"How would you contribute to the Node.js core?",
		},
	},
	"Python": {
		session.DifficultyBeginner: {
			"What are the basic data types in Python?",
			"How do you create and use lists?",
			"What are functions and how do you define them?",
			"Explain if statements and loops in Python.",
			"What are dictionaries and how do you use them?",
			"How do you handle strings in Python?",
			"What is the difference between lists and tuples?",
			"How do you read from and write to files?",
			"What are modules and how do you import them?",
			"How do you handle user input?",
		},
		session.DifficultyIntermediate: {
			"What are classes and objects in Python?",
			"Explain inheritance and polymorphism.",
			"What are decorators and how do you use them?",
			"How do you handle exceptions in Python?",
			"What are list comprehensions?",
			"What is the difference between shallow and deep copy?",
			"How do you work with APIs in Python?",
			"What are lambda functions?",
			"How do you work with databases using Python?",
			"What are context managers?",
		},
		session.DifficultyAdvanced: {
			"Explain the Global Interpreter Lock (GIL).",
			"What are metaclasses in Python?",
			"How does memory management work in Python?",
			"What are generators and yield?",
			"How do you implement multithreading and multiprocessing?",
			"What are async/await in Python?",
			"How do you optimize Python performance?",
			"What are descriptors?",
			"How do you implement design patterns in Python?",
			"What are the best practices for Python code organization?",
		},
		session.DifficultyExpert: {
			"How would you extend Python with C/C++?",
			"What are the internals of Python's interpreter?",
			"How do you profile and optimize Python applications?",
			"How would you implement a Python web framework?",
			"What are the advanced features of Python's type system?",
			"How do you implement distributed computing in Python?",
			"How would you contribute to Python's core development?",
			"What are the trade-offs of different Python implementations?",
			"How do you implement machine learning algorithms from scratch?",
			"How would you design a Python-based microservices architecture?",
		},
	},
}
